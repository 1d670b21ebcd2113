package config

import (
	"fmt"

	"github.com/grandonbarcia/health-tracker/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// App holds everything read from the environment. Variables are parsed
// from the HT_ prefix, e.g. HT_DB_DRIVER, HT_JWT_SECRET.
type App struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// DBDriver selects postgres (default) or sqlite for local development.
	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"health_tracker"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"health_tracker.db"`

	JWTSecret string `envconfig:"JWT_SECRET"`

	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-1"`
	SESEmail  string `envconfig:"SES_EMAIL"`

	// DevRoutes enables the unauthenticated seed endpoint.
	DevRoutes bool `envconfig:"DEV_ROUTES" default:"false"`
}

var (
	Cfg App
	DB  *gorm.DB
)

func Load() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if err := envconfig.Process("HT", &Cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}
	if Cfg.JWTSecret == "" {
		log.Fatal().Msg("HT_JWT_SECRET is required")
	}
}

func InitDB() {
	var (
		db  *gorm.DB
		err error
	)
	switch Cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(Cfg.SQLitePath), &gorm.Config{})
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			Cfg.DBHost, Cfg.DBUser, Cfg.DBPassword, Cfg.DBName, Cfg.DBPort)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", Cfg.DBDriver).Msg("failed to connect to database")
	}
	DB = db

	err = DB.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.UserDay{},
		&models.UserDayItem{},
		&models.UserSettings{},
		&models.RecentFood{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}
}
