package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/storage"
)

type Handlers struct {
	Auth       *AuthHandler
	Form       *FormHandler
	Submission *SubmissionHandler
	Payment    *PaymentHandler
	Admin      *AdminHandler
	Export     *ExportHandler
	Health     *HealthHandler
	Router     *gin.Engine
}

func New(svc *application.Services, receipts *storage.ReceiptStore, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Form:       NewFormHandler(svc.Form),
		Submission: NewSubmissionHandler(svc.Submission),
		Payment:    NewPaymentHandler(svc.Payment, receipts),
		Admin:      NewAdminHandler(svc.Admin, svc.Settings),
		Export:     NewExportHandler(svc.Export),
		Health:     NewHealthHandler(),
		Router:     router,
	}
}
