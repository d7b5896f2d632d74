package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/mkravets/ecommerce_api/internal/models"
	"github.com/mkravets/ecommerce_api/pkg/db"
)

type Config struct {
	PORT          string
	LOG_LEVEL     string
	DB_HOST       string
	DB_PORT       string
	DB_USER       string
	DB_PASSWORD   string
	DB_NAME       string
	ES_URL        string
	ES_USER       string
	ES_PASSWORD   string
	KAFKA_ADDRESS string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:          os.Getenv("PORT"),
		LOG_LEVEL:     os.Getenv("LOG_LEVEL"),
		DB_HOST:       os.Getenv("DB_HOST"),
		DB_PORT:       os.Getenv("DB_PORT"),
		DB_USER:       os.Getenv("DB_USER"),
		DB_PASSWORD:   os.Getenv("DB_PASSWORD"),
		DB_NAME:       os.Getenv("DB_NAME"),
		ES_URL:        os.Getenv("ES_URL"),
		ES_USER:       os.Getenv("ES_USER"),
		ES_PASSWORD:   os.Getenv("ES_PASSWORD"),
		KAFKA_ADDRESS: os.Getenv("KAFKA_ADDRESS"),
	}

	if config.PORT == "" {
		config.PORT = "8080"
	}

	return config, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}

func InitDB(ctx context.Context, c *Config) (*gorm.DB, error) {
	gdb, err := db.Open(ctx, c.DSN())
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderProduct{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return gdb, nil
}
