package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/api/handlers"
	"github.com/tahmid-dev/formbuilder-go/internal/api/middleware"
	"github.com/tahmid-dev/formbuilder-go/internal/config"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/ratelimit"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

// Register wires middleware and every route group onto the engine.
// Middleware order is fixed: recovery outermost, then security
// headers, CORS, rate limiting, then dispatch.
func Register(r *gin.Engine, h *handlers.Handlers, repos *repository.Repos, limiter *ratelimit.Limiter, cfg *config.Config) {
	r.Use(middleware.Recovery(cfg.ShowDebugDetail()))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(limiter, !cfg.IsProduction()))

	authRequired := middleware.JWTAuth(repos, cfg.JWTSecret)
	authz := middleware.NewAuth()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Health)
		api.GET("/test-cors", h.Health.TestCORS)
		api.GET("/rate-limit-status", h.Health.RateLimitStatus)

		// auth
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/refresh", h.Auth.Refresh)
		api.POST("/auth/logout", authRequired, h.Auth.Logout)
		api.GET("/auth/profile", authRequired, h.Auth.Profile)
		api.PUT("/auth/profile", authRequired, h.Auth.UpdateProfile)
		api.POST("/auth/change-password", authRequired, h.Auth.ChangePassword)

		// forms (owner / staff)
		forms := api.Group("/forms", authRequired)
		{
			forms.GET("", h.Form.List)
			forms.POST("", h.Form.Create)
			forms.GET("/:id", h.Form.Get)
			forms.PUT("/:id", h.Form.Update)
			forms.DELETE("/:id", h.Form.Delete)
			forms.POST("/:id/duplicate", h.Form.Duplicate)
			forms.PATCH("/:id/toggle-status", h.Form.ToggleStatus)
			forms.GET("/:id/analytics", h.Form.Analytics)
			forms.GET("/:id/submissions", h.Submission.ListByForm)
		}

		// public surface, no auth
		api.GET("/forms/public/:idOrUrl", h.Form.GetPublic)
		api.GET("/settings/public", h.Admin.PublicSettings)
		api.GET("/settings/payment-methods", h.Admin.PaymentMethods)
		api.GET("/upload/files/:filename", h.Payment.ReceiptFile)
		api.POST("/submissions", h.Submission.Create)
		api.GET("/submissions/public/:uniqueId", h.Submission.GetPublic)
		api.PUT("/submissions/public/:uniqueId", h.Submission.UpdatePublic)
		api.POST("/submissions/verify-edit-code", h.Submission.VerifyEditCode)

		// payments: public legs
		payment := api.Group("/payment")
		{
			payment.POST("/stripe/create-intent", h.Payment.CreateIntent)
			payment.POST("/stripe/confirm", h.Payment.ConfirmIntent)
			payment.POST("/stripe/webhook", h.Payment.Webhook)
			payment.POST("/bank-transfer", h.Payment.RecordBankTransfer)
			payment.POST("/receipt/:uniqueId", h.Payment.UploadReceipt)

			// admin decision on manual transfers
			payment.POST("/bank-transfer/approve/:id", authRequired, authz.RequireCapability(user.CapApprovePayments), h.Payment.ApproveBankTransfer)
			payment.POST("/bank-transfer/reject/:id", authRequired, authz.RequireCapability(user.CapApprovePayments), h.Payment.RejectBankTransfer)
			payment.GET("/history/:id", authRequired, authz.RequireCapability(user.CapViewSubmissions), h.Payment.History)
		}

		bkash := api.Group("/bkash")
		{
			bkash.POST("/create", h.Payment.BkashCreate)
			bkash.POST("/execute", h.Payment.BkashExecute)
			bkash.GET("/query", h.Payment.BkashQuery)
			bkash.POST("/refund", authRequired, authz.RequireCapability(user.CapApprovePayments), h.Payment.BkashRefund)
		}

		// staff surface
		admin := api.Group("/admin", authRequired, authz.RequireStaff())
		{
			admin.GET("/dashboard", h.Admin.Dashboard)
			admin.GET("/stats", h.Admin.Dashboard)

			admin.GET("/submissions", authz.RequireCapability(user.CapViewSubmissions), h.Submission.List)
			admin.GET("/submissions/:id", authz.RequireCapability(user.CapViewSubmissions), h.Submission.Get)
			admin.PUT("/submissions/:id", authz.RequireCapability(user.CapEditSubmissions), h.Submission.AdminUpdate)
			admin.DELETE("/submissions/:id", authz.RequireRole(user.RoleAdmin), h.Submission.Delete)
			admin.GET("/submissions/:id/receipt", authz.RequireCapability(user.CapViewSubmissions), h.Payment.ReceiptURL)

			admin.GET("/users", authz.RequireRole(user.RoleAdmin), h.Admin.ListUsers)
			admin.POST("/users", authz.RequireRole(user.RoleAdmin), h.Admin.CreateUser)
			admin.GET("/users/:id", authz.RequireRole(user.RoleAdmin), h.Admin.GetUser)
			admin.PUT("/users/:id", authz.RequireRole(user.RoleAdmin), h.Admin.UpdateUser)
			admin.DELETE("/users/:id", authz.RequireRole(user.RoleAdmin), h.Admin.DeleteUser)

			admin.GET("/settings", authz.RequireRole(user.RoleAdmin), h.Admin.Settings)
			admin.PUT("/settings", authz.RequireRole(user.RoleAdmin), h.Admin.UpdateSettings)
			admin.GET("/settings/payment-methods", h.Admin.PaymentMethods)
			admin.PUT("/settings/payment-methods", authz.RequireRole(user.RoleAdmin), h.Admin.UpdatePaymentMethods)

			exports := admin.Group("/exports", authz.RequireCapability(user.CapViewReports))
			{
				exports.POST("", h.Export.Generate)
				exports.GET("", h.Export.List)
				exports.GET("/:filename", h.Export.Download)
				exports.DELETE("/:filename", h.Export.Delete)
			}
		}
	}
}
