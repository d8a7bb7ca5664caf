package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
)

// bindJSON binds the request body and, on validation failure, writes a
// 400 with per-field messages. Returns false when the response has
// already been written.
func bindJSON(c *gin.Context, input any) bool {
	err := c.ShouldBindJSON(input)
	if err == nil {
		return true
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fieldErrs := make(map[string]string, len(verr))
		for _, fe := range verr {
			name := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				fieldErrs[name] = "This field is required"
			case "min":
				fieldErrs[name] = fmt.Sprintf("Must be at least %s characters", fe.Param())
			case "max":
				fieldErrs[name] = fmt.Sprintf("Must not exceed %s characters", fe.Param())
			case "email":
				fieldErrs[name] = "Invalid email format"
			default:
				fieldErrs[name] = "Invalid value"
			}
		}
		response.ValidationError(c, "Validation failed", fieldErrs)
		return false
	}

	response.BadRequest(c, "Invalid request body")
	return false
}

// writeServiceError maps service sentinels onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var verrs application.ValidationErrors
	if errors.As(err, &verrs) {
		response.ValidationError(c, "Validation failed", verrs)
		return
	}

	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, application.ErrUsernameTaken),
		errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrCustomURLTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrFormNotFound),
		errors.Is(err, application.ErrSubmissionNotFound),
		errors.Is(err, application.ErrPaymentNotFound),
		errors.Is(err, application.ErrExportNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, application.ErrFormAccessDenied),
		errors.Is(err, application.ErrEditCodeMismatch),
		errors.Is(err, application.ErrEditingDisabled),
		errors.Is(err, application.ErrSuperAdminDelete):
		response.Forbidden(c, err.Error())
	case errors.Is(err, application.ErrIncorrectPassword),
		errors.Is(err, application.ErrInvalidRole),
		errors.Is(err, application.ErrInvalidCustomURL),
		errors.Is(err, application.ErrInvalidFieldSchema),
		errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, application.ErrInvalidSetting),
		errors.Is(err, application.ErrFormInactive),
		errors.Is(err, application.ErrFormHasSubmissions),
		errors.Is(err, application.ErrSubmissionLimit),
		errors.Is(err, application.ErrPaymentWrongState),
		errors.Is(err, application.ErrPaymentWrongMethod),
		errors.Is(err, application.ErrPaymentNotConfigured):
		response.BadRequest(c, err.Error())
	default:
		response.ServerError(c, "Something went wrong")
	}
}

// pagination reads page/per_page query parameters.
func pagination(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

// paged wraps list payloads with their pagination envelope.
func paged(items any, total int64, page, perPage int) gin.H {
	return gin.H{
		"items":    items,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	}
}
