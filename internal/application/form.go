package application

import (
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

var customURLPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

// canAccess implements the shared access/edit predicate: admin role,
// form-management capability, or ownership.
func (s *FormService) canAccess(f *form.Form, claims AccessClaims) bool {
	if claims.Role == user.RoleAdmin || claims.Role == user.RoleSuperAdmin {
		return true
	}
	if user.HasCapability(claims.Role, user.CapManageForms) {
		return true
	}
	return f.UserID == claims.UserID
}

// canDelete restricts deletion to admins and the owner; capability
// roles may edit but not delete.
func (s *FormService) canDelete(f *form.Form, claims AccessClaims) bool {
	if claims.Role == user.RoleAdmin || claims.Role == user.RoleSuperAdmin {
		return true
	}
	return f.UserID == claims.UserID
}

// AccessClaims is the slice of token claims the predicates need.
type AccessClaims struct {
	UserID uint
	Role   string
}

func Claims(userID uint, role string) AccessClaims {
	return AccessClaims{UserID: userID, Role: role}
}

func (s *FormService) validateFields(fields []form.Field) error {
	if len(fields) == 0 {
		return ErrInvalidFieldSchema
	}
	for _, f := range fields {
		if f.Name == "" || f.Label == "" || !form.ValidFieldType(f.Type) {
			return ErrInvalidFieldSchema
		}
	}
	return nil
}

func (s *FormService) checkCustomURL(customURL string, selfID uint) error {
	if !customURLPattern.MatchString(customURL) {
		return ErrInvalidCustomURL
	}
	existing, err := s.Repos.Form.GetFormByCustomURL(customURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrCustomURLTaken
	}
	return nil
}

func (s *FormService) CreateForm(userID uint, input form.CreateInput) (form.DTO, error) {
	if err := s.validateFields(input.Fields); err != nil {
		return form.DTO{}, err
	}
	if input.CustomURL != nil && *input.CustomURL != "" {
		if err := s.checkCustomURL(*input.CustomURL, 0); err != nil {
			return form.DTO{}, err
		}
	}

	fieldsJSON, err := json.Marshal(input.Fields)
	if err != nil {
		return form.DTO{}, err
	}
	settings := input.Settings
	if settings == nil {
		settings = &form.Settings{}
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return form.DTO{}, err
	}

	f := form.Form{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Fields:      datatypes.JSON(fieldsJSON),
		Settings:    datatypes.JSON(settingsJSON),
		IsActive:    true,
	}
	if input.CustomURL != nil && *input.CustomURL != "" {
		f.CustomURL = input.CustomURL
	}
	if input.IsActive != nil {
		f.IsActive = *input.IsActive
	}
	if input.AllowEditing != nil {
		f.AllowEditing = *input.AllowEditing
	}

	if err := s.Repos.Form.SaveForm(&f); err != nil {
		return form.DTO{}, err
	}
	return form.ToDTO(&f)
}

func (s *FormService) GetForm(id uint, claims AccessClaims) (form.DTO, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return form.DTO{}, ErrFormNotFound
	}
	if !s.canAccess(&f, claims) {
		return form.DTO{}, ErrFormAccessDenied
	}
	return form.ToDTO(&f)
}

// GetPublicForm resolves by numeric id or custom URL for anonymous
// submitters. Inactive forms are hidden.
func (s *FormService) GetPublicForm(idOrURL string, id uint) (form.PublicDTO, error) {
	var f form.Form
	var err error
	if id != 0 {
		f, err = s.Repos.Form.GetFormByID(id)
	} else {
		f, err = s.Repos.Form.GetFormByCustomURL(idOrURL)
	}
	if err != nil {
		return form.PublicDTO{}, ErrFormNotFound
	}
	if !f.IsActive {
		return form.PublicDTO{}, ErrFormNotFound
	}
	return form.ToPublicDTO(&f)
}

// ListForms returns the caller's own forms, or every form for callers
// passing the access predicate globally.
func (s *FormService) ListForms(claims AccessClaims, page, limit int) ([]form.DTO, int64, error) {
	var (
		forms []form.Form
		total int64
		err   error
	)
	if claims.Role == user.RoleAdmin || claims.Role == user.RoleSuperAdmin ||
		user.HasCapability(claims.Role, user.CapManageForms) {
		forms, total, err = s.Repos.Form.ListForms(page, limit)
	} else {
		forms, total, err = s.Repos.Form.ListFormsByUser(claims.UserID, page, limit)
	}
	if err != nil {
		return nil, 0, err
	}

	out := make([]form.DTO, 0, len(forms))
	for i := range forms {
		dto, err := form.ToDTO(&forms[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, dto)
	}
	return out, total, nil
}

func (s *FormService) UpdateForm(id uint, claims AccessClaims, input form.UpdateInput) (form.DTO, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return form.DTO{}, ErrFormNotFound
	}
	if !s.canAccess(&f, claims) {
		return form.DTO{}, ErrFormAccessDenied
	}

	if input.Title != nil {
		if *input.Title == "" {
			return form.DTO{}, ErrInvalidFieldSchema
		}
		f.Title = *input.Title
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.Fields != nil {
		if err := s.validateFields(input.Fields); err != nil {
			return form.DTO{}, err
		}
		fieldsJSON, err := json.Marshal(input.Fields)
		if err != nil {
			return form.DTO{}, err
		}
		f.Fields = datatypes.JSON(fieldsJSON)
	}
	if input.Settings != nil {
		settingsJSON, err := json.Marshal(input.Settings)
		if err != nil {
			return form.DTO{}, err
		}
		f.Settings = datatypes.JSON(settingsJSON)
	}
	if input.CustomURL != nil {
		if *input.CustomURL == "" {
			f.CustomURL = nil
		} else {
			if err := s.checkCustomURL(*input.CustomURL, f.ID); err != nil {
				return form.DTO{}, err
			}
			f.CustomURL = input.CustomURL
		}
	}
	if input.IsActive != nil {
		f.IsActive = *input.IsActive
	}
	if input.AllowEditing != nil {
		f.AllowEditing = *input.AllowEditing
	}

	if err := s.Repos.Form.SaveForm(&f); err != nil {
		return form.DTO{}, err
	}
	return form.ToDTO(&f)
}

// DeleteForm refuses while submissions reference the form; submissions
// outlive their form and are never cascaded.
func (s *FormService) DeleteForm(id uint, claims AccessClaims) error {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return ErrFormNotFound
	}
	if !s.canDelete(&f, claims) {
		return ErrFormAccessDenied
	}

	count, err := s.Repos.Form.CountSubmissions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrFormHasSubmissions
	}
	return s.Repos.Form.DeleteForm(id)
}

// ToggleStatus flips the form's published state.
func (s *FormService) ToggleStatus(id uint, claims AccessClaims) (form.DTO, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return form.DTO{}, ErrFormNotFound
	}
	if !s.canAccess(&f, claims) {
		return form.DTO{}, ErrFormAccessDenied
	}

	f.IsActive = !f.IsActive
	if err := s.Repos.Form.SaveForm(&f); err != nil {
		return form.DTO{}, err
	}
	return form.ToDTO(&f)
}

// FormAnalytics aggregates per-form counters for the owner dashboard.
type FormAnalytics struct {
	FormID          uint             `json:"form_id"`
	SubmissionCount int              `json:"submission_count"`
	ByStatus        map[string]int64 `json:"submissions_by_status"`
	Today           int64            `json:"submissions_today"`
	ThisWeek        int64            `json:"submissions_this_week"`
	ThisMonth       int64            `json:"submissions_this_month"`
	AvgPerDay       float64          `json:"avg_per_day"`
	FieldUsage      map[string]int64 `json:"field_usage"`
	Extra           map[string]any   `json:"extra,omitempty"`
}

// fieldUsageSample caps how many submissions the usage counter scans.
const fieldUsageSample = 200

// Analytics returns live counters, rolling-window totals and per-field
// fill rates, plus any stored analytics blob.
func (s *FormService) Analytics(id uint, claims AccessClaims) (FormAnalytics, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return FormAnalytics{}, ErrFormNotFound
	}
	if !s.canAccess(&f, claims) {
		return FormAnalytics{}, ErrFormAccessDenied
	}

	byStatus, err := s.Repos.Submission.CountByStatusForForm(id)
	if err != nil {
		return FormAnalytics{}, err
	}
	var total int64
	for _, n := range byStatus {
		total += n
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	countSince := func(t time.Time) (int64, error) {
		_, n, err := s.Repos.Submission.ListSubmissions(submission.ListFilter{
			FormID: id, DateFrom: &t, Page: 1, PerPage: 1,
		})
		return n, err
	}
	today, err := countSince(dayStart)
	if err != nil {
		return FormAnalytics{}, err
	}
	week, err := countSince(dayStart.AddDate(0, 0, -6))
	if err != nil {
		return FormAnalytics{}, err
	}
	month, err := countSince(dayStart.AddDate(0, 0, -29))
	if err != nil {
		return FormAnalytics{}, err
	}

	days := now.Sub(f.CreatedAt).Hours() / 24
	if days < 1 {
		days = 1
	}

	sample, _, err := s.Repos.Submission.ListSubmissions(submission.ListFilter{
		FormID: id, Page: 1, PerPage: fieldUsageSample,
	})
	if err != nil {
		return FormAnalytics{}, err
	}
	usage := map[string]int64{}
	for i := range sample {
		data, err := sample[i].ParsedData()
		if err != nil {
			continue
		}
		for name, v := range data {
			if stringify(v) != "" {
				usage[name]++
			}
		}
	}

	out := FormAnalytics{
		FormID:          f.ID,
		SubmissionCount: f.SubmissionCount,
		ByStatus:        byStatus,
		Today:           today,
		ThisWeek:        week,
		ThisMonth:       month,
		AvgPerDay:       float64(total) / days,
		FieldUsage:      usage,
	}
	if len(f.Analytics) > 0 {
		extra := map[string]any{}
		if err := json.Unmarshal(f.Analytics, &extra); err == nil {
			out.Extra = extra
		}
	}
	return out, nil
}

// DuplicateForm copies the schema into a fresh unpublished draft. The
// custom URL and submission counter do not carry over.
func (s *FormService) DuplicateForm(id uint, claims AccessClaims) (form.DTO, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return form.DTO{}, ErrFormNotFound
	}
	if !s.canAccess(&f, claims) {
		return form.DTO{}, ErrFormAccessDenied
	}

	dup := form.Form{
		UserID:       claims.UserID,
		Title:        f.Title + " (Copy)",
		Description:  f.Description,
		Fields:       f.Fields,
		Settings:     f.Settings,
		AllowEditing: f.AllowEditing,
		IsActive:     false,
	}
	if err := s.Repos.Form.SaveForm(&dup); err != nil {
		return form.DTO{}, err
	}
	return form.ToDTO(&dup)
}
