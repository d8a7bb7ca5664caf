package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
)

type ExportHandler struct {
	svc *application.ExportService
}

func NewExportHandler(svc *application.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Generate builds a CSV or PDF export of filtered submissions. The
// response names the file, where to download it, and how many records
// it holds.
func (h *ExportHandler) Generate(c *gin.Context) {
	var input struct {
		Format        string `json:"format" binding:"required,oneof=csv pdf"`
		FormID        uint   `json:"form_id"`
		Status        string `json:"status"`
		PaymentStatus string `json:"payment_status"`
		DateFrom      string `json:"date_from" binding:"omitempty,datetime=2006-01-02"`
		DateTo        string `json:"date_to" binding:"omitempty,datetime=2006-01-02"`
	}
	if !bindJSON(c, &input) {
		return
	}

	filter := submission.ListFilter{
		FormID:        input.FormID,
		Status:        input.Status,
		PaymentStatus: input.PaymentStatus,
	}
	if from, err := time.Parse("2006-01-02", input.DateFrom); err == nil {
		filter.DateFrom = &from
	}
	if to, err := time.Parse("2006-01-02", input.DateTo); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	info, err := h.svc.Generate(input.Format, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, gin.H{
		"filename":     info.Filename,
		"download_url": "/api/admin/exports/" + info.Filename,
		"record_count": info.Records,
		"size":         info.Size,
		"created_at":   info.CreatedAt,
	}, "Export generated")
}

func (h *ExportHandler) List(c *gin.Context) {
	files, err := h.svc.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, files, "Exports retrieved")
}

// Download streams a generated file as an attachment.
func (h *ExportHandler) Download(c *gin.Context) {
	filename := c.Param("filename")
	path, err := h.svc.Resolve(filename)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	c.File(path)
}

func (h *ExportHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("filename")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil, "Export deleted")
}
