package form

import (
	"encoding/json"
	"time"
)

type CreateInput struct {
	Title        string    `json:"title" binding:"required,max=255"`
	Description  string    `json:"description" binding:"omitempty,max=1000"`
	Fields       []Field   `json:"fields" binding:"required,min=1"`
	Settings     *Settings `json:"settings"`
	CustomURL    *string   `json:"custom_url"`
	IsActive     *bool     `json:"is_active"`
	AllowEditing *bool     `json:"allow_editing"`
}

type UpdateInput struct {
	Title        *string   `json:"title" binding:"omitempty,max=255"`
	Description  *string   `json:"description" binding:"omitempty,max=1000"`
	Fields       []Field   `json:"fields"`
	Settings     *Settings `json:"settings"`
	CustomURL    *string   `json:"custom_url"`
	IsActive     *bool     `json:"is_active"`
	AllowEditing *bool     `json:"allow_editing"`
}

// DTO is the owner-facing projection of a form.
type DTO struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Fields          []Field   `json:"fields"`
	Settings        *Settings `json:"settings"`
	CustomURL       *string   `json:"custom_url"`
	IsActive        bool      `json:"is_active"`
	AllowEditing    bool      `json:"allow_editing"`
	SubmissionCount int       `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PublicDTO is what anonymous submitters see. It omits ownership and
// lifecycle detail.
type PublicDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Fields       []Field   `json:"fields"`
	Settings     *Settings `json:"settings"`
	AllowEditing bool      `json:"allow_editing"`
}

// ParsedFields decodes the stored fields column.
func (f *Form) ParsedFields() ([]Field, error) {
	var fields []Field
	if len(f.Fields) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(f.Fields, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ParsedSettings decodes the stored settings column. A form with no
// settings row behaves as a free form.
func (f *Form) ParsedSettings() (*Settings, error) {
	if len(f.Settings) == 0 {
		return &Settings{}, nil
	}
	var s Settings
	if err := json.Unmarshal(f.Settings, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ToDTO projects a form for its owner.
func ToDTO(f *Form) (DTO, error) {
	fields, err := f.ParsedFields()
	if err != nil {
		return DTO{}, err
	}
	settings, err := f.ParsedSettings()
	if err != nil {
		return DTO{}, err
	}
	return DTO{
		ID:              f.ID,
		UserID:          f.UserID,
		Title:           f.Title,
		Description:     f.Description,
		Fields:          fields,
		Settings:        settings,
		CustomURL:       f.CustomURL,
		IsActive:        f.IsActive,
		AllowEditing:    f.AllowEditing,
		SubmissionCount: f.SubmissionCount,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}, nil
}

// ToPublicDTO projects a form for anonymous access.
func ToPublicDTO(f *Form) (PublicDTO, error) {
	fields, err := f.ParsedFields()
	if err != nil {
		return PublicDTO{}, err
	}
	settings, err := f.ParsedSettings()
	if err != nil {
		return PublicDTO{}, err
	}
	return PublicDTO{
		ID:           f.ID,
		Title:        f.Title,
		Description:  f.Description,
		Fields:       fields,
		Settings:     settings,
		AllowEditing: f.AllowEditing,
	}, nil
}
