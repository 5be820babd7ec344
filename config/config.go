package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string
	PDFDir      string
	// EnquiryMarkConverted flips an enquiry to Converted when it is turned into
	// a draft booking. Off, enquiries stay Pending for repeat bookings.
	EnquiryMarkConverted bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:          os.Getenv("POSTGRES_URL"),
		MongoURL:             os.Getenv("MONGO_URL"),
		DBType:               os.Getenv("DB_TYPE"),
		Port:                 os.Getenv("PORT"),
		PDFDir:               os.Getenv("PDF_DIR"),
		EnquiryMarkConverted: os.Getenv("ENQUIRY_MARK_CONVERTED") != "false",
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = "./pdfs"
	}
	return cfg
}
