package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls variables from a .env file into the process environment.
// A missing file is fine in deployed environments.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

func EnvMongoURI() string {
	return os.Getenv("MONGOURI")
}

func EnvDatabaseName() string {
	name := os.Getenv("MONGO_DATABASE")
	if name == "" {
		name = "aquaticexotica"
	}
	return name
}

func EnvJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvPayUMerchantKey() string {
	return os.Getenv("PAYU_MERCHANT_KEY")
}

func EnvPayUMerchantSalt() string {
	return os.Getenv("PAYU_MERCHANT_SALT")
}

func EnvPayUBaseURL() string {
	return os.Getenv("PAYU_BASE_URL")
}

func EnvPayUSuccessURL() string {
	return os.Getenv("PAYU_SUCCESS_URL")
}

func EnvPayUFailureURL() string {
	return os.Getenv("PAYU_FAILURE_URL")
}
