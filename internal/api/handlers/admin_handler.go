package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/setting"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
	"github.com/tahmid-dev/formbuilder-go/pkg/utils"
)

type AdminHandler struct {
	svc      *application.AdminService
	settings *application.SettingsService
}

func NewAdminHandler(svc *application.AdminService, settings *application.SettingsService) *AdminHandler {
	return &AdminHandler{svc: svc, settings: settings}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, stats, "Dashboard retrieved")
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, perPage := pagination(c)
	users, total, err := h.svc.ListUsers(page, perPage)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, paged(users, total, page, perPage), "Users retrieved")
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.svc.GetUser(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "User retrieved")
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var input user.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.CreateUser(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, dto, "User created")
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var input user.UpdateUserInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.UpdateUser(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "User updated")
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.DeleteUser(id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil, "User deleted")
}

// Settings returns every configuration row.
func (h *AdminHandler) Settings(c *gin.Context) {
	rows, err := h.settings.Settings()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, rows, "Settings retrieved")
}

// UpdateSettings upserts a batch of configuration rows.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}

	var input struct {
		Settings []setting.UpdateInput `json:"settings" binding:"required,min=1,dive"`
	}
	if !bindJSON(c, &input) {
		return
	}

	rows, err := h.settings.UpdateSettings(input.Settings, claims.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, rows, "Settings updated")
}

// PublicSettings returns only the rows marked public.
func (h *AdminHandler) PublicSettings(c *gin.Context) {
	rows, err := h.settings.PublicSettings()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, rows, "Settings retrieved")
}

// PaymentMethods returns the runtime-editable payment surface.
func (h *AdminHandler) PaymentMethods(c *gin.Context) {
	cfg, err := h.settings.PaymentMethods()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, cfg, "Payment methods retrieved")
}

func (h *AdminHandler) UpdatePaymentMethods(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}

	var cfg setting.PaymentMethodConfig
	if !bindJSON(c, &cfg) {
		return
	}

	if err := h.settings.UpdatePaymentMethods(cfg, claims.UserID); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, cfg, "Payment methods updated")
}
