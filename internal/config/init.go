package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env and fails fast on configuration the process cannot run
// without. The image-service keypair is deliberately not checked here: a
// missing key surfaces as a failure payload from the upload-credential
// endpoint at request time, not as a startup error.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "SESSION_JWT_SECRET", "WEBHOOK_SIGNING_SECRET"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}
