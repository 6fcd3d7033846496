package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"
	"keliauk/internal/services"
)

var Module = fx.Provide(provideMailService)

// provideMailService returns nil when SMTP_HOST is unset. The account service
// treats a nil mailer as "development mode" and returns codes in responses.
func provideMailService() services.IMailService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, mail delivery disabled")
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Keliauk.lt",
		RequireTLS: true,

		AppName:    "Keliauk.lt",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
		return nil
	}

	return mailService
}
