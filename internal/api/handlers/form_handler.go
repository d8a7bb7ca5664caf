package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
	"github.com/tahmid-dev/formbuilder-go/pkg/utils"
)

type FormHandler struct {
	svc *application.FormService
}

func NewFormHandler(svc *application.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

func (h *FormHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}

	var input form.CreateInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.CreateForm(claims.UserID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, dto, "Form created")
}

func (h *FormHandler) List(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}

	page, perPage := pagination(c)
	forms, total, err := h.svc.ListForms(application.Claims(claims.UserID, claims.Role), page, perPage)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, paged(forms, total, page, perPage), "Forms retrieved")
}

func (h *FormHandler) Get(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.svc.GetForm(id, application.Claims(claims.UserID, claims.Role))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Form retrieved")
}

// GetPublic resolves a form by numeric id or custom URL without auth.
func (h *FormHandler) GetPublic(c *gin.Context) {
	param := c.Param("idOrUrl")

	var id uint
	if n, err := strconv.ParseUint(param, 10, 32); err == nil {
		id = uint(n)
	}

	dto, err := h.svc.GetPublicForm(param, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Form retrieved")
}

func (h *FormHandler) Update(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var input form.UpdateInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.UpdateForm(id, application.Claims(claims.UserID, claims.Role), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Form updated")
}

func (h *FormHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.DeleteForm(id, application.Claims(claims.UserID, claims.Role)); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil, "Form deleted")
}

func (h *FormHandler) ToggleStatus(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.svc.ToggleStatus(id, application.Claims(claims.UserID, claims.Role))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Form status updated")
}

func (h *FormHandler) Analytics(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stats, err := h.svc.Analytics(id, application.Claims(claims.UserID, claims.Role))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, stats, "Analytics retrieved")
}

func (h *FormHandler) Duplicate(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.svc.DuplicateForm(id, application.Claims(claims.UserID, claims.Role))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, dto, "Form duplicated")
}
