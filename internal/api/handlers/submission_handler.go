package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
	"github.com/tahmid-dev/formbuilder-go/pkg/utils"
)

type SubmissionHandler struct {
	svc *application.SubmissionService
}

func NewSubmissionHandler(svc *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Create accepts an anonymous public submission.
func (h *SubmissionHandler) Create(c *gin.Context) {
	var input submission.CreateInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.Create(input, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, dto, "Submission received")
}

// GetPublic returns a submission to its submitter by public reference.
func (h *SubmissionHandler) GetPublic(c *gin.Context) {
	dto, err := h.svc.GetByUniqueID(c.Param("uniqueId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Submission retrieved")
}

// UpdatePublic rewrites a submission's data gated by the edit code.
func (h *SubmissionHandler) UpdatePublic(c *gin.Context) {
	var input submission.PublicUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.UpdatePublic(c.Param("uniqueId"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Submission updated")
}

// VerifyEditCode lets a submitter check their code before editing.
func (h *SubmissionHandler) VerifyEditCode(c *gin.Context) {
	var input submission.VerifyEditCodeInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.svc.VerifyEditCode(input.UniqueID, input.EditCode); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"valid": true}, "Edit code verified")
}

// List returns filtered submissions for staff.
func (h *SubmissionHandler) List(c *gin.Context) {
	page, perPage := pagination(c)
	filter := submission.ListFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Search:        c.Query("search"),
		Page:          page,
		PerPage:       perPage,
	}
	if formID, err := strconv.ParseUint(c.Query("form_id"), 10, 32); err == nil {
		filter.FormID = uint(formID)
	}
	if from, err := time.Parse("2006-01-02", c.Query("date_from")); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("date_to")); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	subs, total, err := h.svc.List(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, paged(subs, total, page, perPage), "Submissions retrieved")
}

// ListByForm returns one form's submissions to its owner or staff.
func (h *SubmissionHandler) ListByForm(c *gin.Context) {
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

	page, perPage := pagination(c)
	subs, total, err := h.svc.ListByForm(id, application.Claims(claims.UserID, claims.Role), page, perPage)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, paged(subs, total, page, perPage), "Submissions retrieved")
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.svc.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Submission retrieved")
}

func (h *SubmissionHandler) AdminUpdate(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var input submission.AdminUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.AdminUpdate(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Submission updated")
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil, "Submission deleted")
}
