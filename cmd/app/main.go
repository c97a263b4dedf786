package main

import (
	"os"

	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"

	dbadapter "inkwell/internal/adapters/database"
	"inkwell/internal/adapters/httpapi"
	"inkwell/internal/config"
	"inkwell/internal/core/post"
	postapp "inkwell/internal/core/post/service"
	uploadapp "inkwell/internal/core/upload/service"
	"inkwell/internal/core/user"
	userapp "inkwell/internal/core/user/service"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("database migrations completed")

	defer closeResources(config.Logger)

	verifier, err := svix.NewWebhook(os.Getenv("WEBHOOK_SIGNING_SECRET"))
	if err != nil {
		config.Logger.Fatal("invalid webhook signing secret", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	profileSvc := userapp.NewProfileService(userRepo)
	postSvc := postapp.NewPostService(postRepo)
	uploadSvc := uploadapp.NewUploadService(
		os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		os.Getenv("IMAGEKIT_PUBLIC_KEY"),
	)

	signInURL := os.Getenv("SIGN_IN_URL")
	if signInURL == "" {
		signInURL = "/"
	}

	r := httpapi.SetupRoutes(
		profileSvc,
		postSvc,
		uploadSvc,
		verifier,
		[]byte(os.Getenv("SESSION_JWT_SECRET")),
		signInURL,
	)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("App is running...", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources releases the database connection on shutdown.
func closeResources(logger *zap.Logger) {
	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
