package application

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\+]?[\d\s\-\(\)]{10,}$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s]+$`)
)

type SubmissionService struct {
	Repos *repository.Repos
}

func NewSubmissionService(repos *repository.Repos) *SubmissionService {
	return &SubmissionService{Repos: repos}
}

// ValidateData checks a data map against a form's field schema and
// collects per-field messages.
func ValidateData(fields []form.Field, data map[string]any) ValidationErrors {
	errs := ValidationErrors{}
	for _, f := range fields {
		value := stringify(data[f.Name])

		if value == "" {
			if f.Required {
				errs[f.Name] = "This field is required"
			}
			continue
		}

		switch f.Type {
		case form.FieldEmail:
			if !emailPattern.MatchString(value) {
				errs[f.Name] = "Invalid email format"
				continue
			}
		case form.FieldNumber:
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				errs[f.Name] = "Must be a number"
				continue
			}
		case form.FieldTel:
			if !phonePattern.MatchString(value) {
				errs[f.Name] = "Invalid phone number format"
				continue
			}
		case form.FieldURL:
			if !urlPattern.MatchString(value) {
				errs[f.Name] = "Invalid URL format"
				continue
			}
		}

		if f.MinLength > 0 && len(value) < f.MinLength {
			errs[f.Name] = fmt.Sprintf("Must be at least %d characters", f.MinLength)
			continue
		}
		if f.MaxLength > 0 && len(value) > f.MaxLength {
			errs[f.Name] = fmt.Sprintf("Must not exceed %d characters", f.MaxLength)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// GenerateUniqueID builds the public reference from the form title's
// uppercase letters (at most 4), the current year and a 6-digit random
// sequence, e.g. "CONF2026-042917".
var GenerateUniqueID = func(title string) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(title) {
		if r >= 'A' && r <= 'Z' {
			prefix.WriteRune(r)
			if prefix.Len() == 4 {
				break
			}
		}
	}
	p := prefix.String()
	if p == "" {
		p = "FORM"
	}
	return fmt.Sprintf("%s%d-%06d", p, time.Now().Year(), randomInt(1000000))
}

// GenerateEditCode mints the 8-character token gating public edits.
var GenerateEditCode = func() string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	out := make([]byte, 8)
	for i := range out {
		out[i] = alphabet[randomInt(int64(len(alphabet)))]
	}
	return string(out)
}

func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return time.Now().UnixNano() % max
	}
	return n.Int64()
}

// Create validates the payload against the form schema and persists a
// pending submission.
func (s *SubmissionService) Create(input submission.CreateInput, ip, userAgent string) (submission.CreatedDTO, error) {
	f, err := s.Repos.Form.GetFormByID(input.FormID)
	if err != nil {
		return submission.CreatedDTO{}, ErrFormNotFound
	}
	if !f.IsActive {
		return submission.CreatedDTO{}, ErrFormInactive
	}

	fields, err := f.ParsedFields()
	if err != nil {
		return submission.CreatedDTO{}, err
	}
	if errs := ValidateData(fields, input.Data); errs != nil {
		return submission.CreatedDTO{}, errs
	}

	settings, err := f.ParsedSettings()
	if err != nil {
		return submission.CreatedDTO{}, err
	}
	if settings.SubmissionLimit > 0 && f.SubmissionCount >= settings.SubmissionLimit {
		return submission.CreatedDTO{}, ErrSubmissionLimit
	}

	dataJSON, err := json.Marshal(input.Data)
	if err != nil {
		return submission.CreatedDTO{}, err
	}

	sub := submission.Submission{
		UniqueID:           GenerateUniqueID(f.Title),
		EditCode:           GenerateEditCode(),
		FormID:             f.ID,
		Data:               datatypes.JSON(dataJSON),
		Status:             submission.StatusPending,
		PaymentStatus:      submission.PayPending,
		PaymentMethod:      input.PaymentMethod,
		SubmitterIP:        ip,
		SubmitterUserAgent: userAgent,
	}
	if settings.RequiresPayment {
		sub.PaymentAmount = settings.PaymentAmount
		sub.PaymentCurrency = settings.PaymentCurrency
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.SaveSubmission(&sub); err != nil {
			return err
		}
		return tx.Form.IncrementSubmissionCount(f.ID)
	})
	if err != nil {
		return submission.CreatedDTO{}, err
	}

	return submission.CreatedDTO{
		ID:            sub.ID,
		UniqueID:      sub.UniqueID,
		EditCode:      sub.EditCode,
		Status:        sub.Status,
		PaymentStatus: sub.PaymentStatus,
		PaymentAmount: sub.PaymentAmount,
	}, nil
}

// GetByUniqueID returns a submission to its submitter. The edit code,
// submitter network detail and staff notes are never included.
func (s *SubmissionService) GetByUniqueID(uniqueID string) (submission.DTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByUniqueID(uniqueID)
	if err != nil {
		return submission.DTO{}, ErrSubmissionNotFound
	}
	dto, err := submission.ToDTO(&sub)
	if err != nil {
		return submission.DTO{}, err
	}
	dto.SubmitterIP = ""
	dto.AdminNotes = ""
	return dto, nil
}

// UpdatePublic rewrites the data map when the form allows editing and
// the caller presents the exact edit code. The code comparison is
// plain string equality; codes are stored unhashed.
func (s *SubmissionService) UpdatePublic(uniqueID string, input submission.PublicUpdateInput) (submission.DTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByUniqueID(uniqueID)
	if err != nil {
		return submission.DTO{}, ErrSubmissionNotFound
	}

	f, err := s.Repos.Form.GetFormByID(sub.FormID)
	if err != nil {
		return submission.DTO{}, ErrFormNotFound
	}
	if !f.AllowEditing {
		return submission.DTO{}, ErrEditingDisabled
	}
	if input.EditCode != sub.EditCode {
		return submission.DTO{}, ErrEditCodeMismatch
	}

	fields, err := f.ParsedFields()
	if err != nil {
		return submission.DTO{}, err
	}
	if errs := ValidateData(fields, input.Data); errs != nil {
		return submission.DTO{}, errs
	}

	dataJSON, err := json.Marshal(input.Data)
	if err != nil {
		return submission.DTO{}, err
	}
	sub.Data = datatypes.JSON(dataJSON)
	if err := appendEditEntry(&sub, "public", ""); err != nil {
		return submission.DTO{}, err
	}

	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return submission.DTO{}, err
	}
	return submission.ToDTO(&sub)
}

// VerifyEditCode reports whether a code unlocks the submission without
// mutating anything. Lets the client gate its edit UI up front.
func (s *SubmissionService) VerifyEditCode(uniqueID, editCode string) error {
	sub, err := s.Repos.Submission.GetSubmissionByUniqueID(uniqueID)
	if err != nil {
		return ErrSubmissionNotFound
	}
	if editCode != sub.EditCode {
		return ErrEditCodeMismatch
	}
	return nil
}

// List returns staff-facing submissions with the given filter.
func (s *SubmissionService) List(filter submission.ListFilter) ([]submission.DTO, int64, error) {
	subs, total, err := s.Repos.Submission.ListSubmissions(filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]submission.DTO, 0, len(subs))
	for i := range subs {
		dto, err := submission.ToDTO(&subs[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, dto)
	}
	return out, total, nil
}

// ListByForm returns one form's submissions to its owner or to staff
// with submission access.
func (s *SubmissionService) ListByForm(formID uint, claims AccessClaims, page, perPage int) ([]submission.DTO, int64, error) {
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		return nil, 0, ErrFormNotFound
	}
	allowed := claims.Role == user.RoleAdmin || claims.Role == user.RoleSuperAdmin ||
		user.HasCapability(claims.Role, user.CapViewSubmissions) ||
		f.UserID == claims.UserID
	if !allowed {
		return nil, 0, ErrFormAccessDenied
	}
	return s.List(submission.ListFilter{FormID: formID, Page: page, PerPage: perPage})
}

// Get returns one submission by numeric id.
func (s *SubmissionService) Get(id uint) (submission.DTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(id)
	if err != nil {
		return submission.DTO{}, ErrSubmissionNotFound
	}
	return submission.ToDTO(&sub)
}

// AdminUpdate applies a free-form status or note write. No transition
// table restricts which status may follow which; the overlay is
// deliberately permissive.
func (s *SubmissionService) AdminUpdate(id uint, input submission.AdminUpdateInput) (submission.DTO, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(id)
	if err != nil {
		return submission.DTO{}, ErrSubmissionNotFound
	}

	if input.Status != nil {
		if !submission.ValidStatus(*input.Status) {
			return submission.DTO{}, ErrInvalidStatus
		}
		sub.Status = *input.Status
	}
	if input.AdminNotes != nil {
		sub.AdminNotes = *input.AdminNotes
	}
	if err := appendEditEntry(&sub, "admin", ""); err != nil {
		return submission.DTO{}, err
	}

	if err := s.Repos.Submission.SaveSubmission(&sub); err != nil {
		return submission.DTO{}, err
	}
	return submission.ToDTO(&sub)
}

// Delete removes a submission entirely.
func (s *SubmissionService) Delete(id uint) error {
	if _, err := s.Repos.Submission.GetSubmissionByID(id); err != nil {
		return ErrSubmissionNotFound
	}
	return s.Repos.Submission.DeleteSubmission(id)
}

func appendEditEntry(sub *submission.Submission, source, note string) error {
	entries, err := sub.ParsedEditHistory()
	if err != nil {
		return err
	}
	entries = append(entries, submission.EditEntry{
		EditedAt: time.Now(),
		Source:   source,
		Note:     note,
	})
	historyJSON, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	sub.EditHistory = datatypes.JSON(historyJSON)
	return nil
}
