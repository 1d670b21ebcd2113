package main

import (
	"github.com/grandonbarcia/health-tracker/config"
	"github.com/grandonbarcia/health-tracker/routes"
	"github.com/grandonbarcia/health-tracker/utils"

	"github.com/rs/zerolog/log"
)

func main() {
	config.Load()
	config.InitDB()

	if config.Cfg.SESEmail != "" {
		if err := utils.InitSES(); err != nil {
			log.Warn().Err(err).Msg("mailer disabled")
		}
	}

	r := routes.SetupRouter()
	log.Info().Str("addr", config.Cfg.HTTPAddr).Msg("listening")
	if err := r.Run(config.Cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
