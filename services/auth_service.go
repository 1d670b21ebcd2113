package services

import (
	"errors"

	"github.com/grandonbarcia/health-tracker/config"
	"github.com/grandonbarcia/health-tracker/models"
	"github.com/grandonbarcia/health-tracker/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

func RegisterUser(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	return config.DB.Create(&user).Error
}

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func AuthenticateUser(email, password string) (models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
