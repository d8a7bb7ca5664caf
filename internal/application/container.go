package application

import (
	"github.com/tahmid-dev/formbuilder-go/internal/config"
	"github.com/tahmid-dev/formbuilder-go/internal/payments/bkash"
	"github.com/tahmid-dev/formbuilder-go/internal/payments/stripe"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

type Services struct {
	Auth       *AuthService
	Form       *FormService
	Submission *SubmissionService
	Payment    *PaymentService
	Admin      *AdminService
	Settings   *SettingsService
	Export     *ExportService
}

func New(repos *repository.Repos, cfg *config.Config) *Services {
	stripeClient := stripe.NewClient(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	bkashGateway := bkash.NewGateway(cfg.BkashAppKey)

	return &Services{
		Auth:       NewAuthService(repos, cfg.JWTSecret, cfg.JWTExpiration),
		Form:       NewFormService(repos),
		Submission: NewSubmissionService(repos),
		Payment:    NewPaymentService(repos, stripeClient, bkashGateway),
		Admin:      NewAdminService(repos),
		Settings:   NewSettingsService(repos),
		Export:     NewExportService(repos, cfg.ExportDir),
	}
}
