package utils

import (
	"context"
	"errors"
	"fmt"

	appconfig "github.com/grandonbarcia/health-tracker/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"
)

var sesClient *ses.Client

// InitSES sets up the SES client. Optional: without it, mail sends fail
// with an explicit error instead of panicking, which keeps MFA and password
// reset usable in environments that configure AWS and harmless in ones that
// don't.
func InitSES() error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(appconfig.Cfg.AWSRegion))
	if err != nil {
		return fmt.Errorf("aws config load failed: %w", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	return nil
}

func sendEmail(to, subject, body string) error {
	if sesClient == nil {
		return errors.New("mailer not configured")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(appconfig.Cfg.SESEmail),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("ses send failed")
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

func SendMFAEmail(to, code string) error {
	subject := "Your MFA Code"
	body := fmt.Sprintf("Your MFA verification code is: %s\n\nUse this to complete your login.", code)
	return sendEmail(to, subject, body)
}

func SendResetEmail(to, token string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", token)
	return sendEmail(to, subject, body)
}
