package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"PortfolioGolang/internal/config"
	"PortfolioGolang/pkg/google"
	"PortfolioGolang/pkg/log"
	"PortfolioGolang/pkg/redis"
	"PortfolioGolang/pkg/smtp"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	googleProvider := google.New()
	redisServer := redis.New()
	smtpMailer := smtp.New()

	options := []config.ServerOption{
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithGoogleProvider(googleProvider),
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithCompanyProfile(),
		config.WithSessions(),
		config.WithChatbotNLP(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	}

	// Pairing blocks until the device scans a QR code, so the channel is
	// opt-in.
	if os.Getenv("WHATSAPP_ENABLED") == "true" {
		options = append(options, config.WithWhatsappClient())
	}

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
