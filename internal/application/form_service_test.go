package application

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
	"github.com/tahmid-dev/formbuilder-go/internal/repository/mock"
)

func setupFormServiceMocks(t *testing.T) (*FormService, *mock.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	repos := &repository.Repos{
		Form: mockForm,
	}
	return NewFormService(repos), mockForm
}

func sampleFields() []form.Field {
	return []form.Field{
		{Name: "name", Label: "Full Name", Type: form.FieldText, Required: true},
		{Name: "email", Label: "Email", Type: form.FieldEmail, Required: true},
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	assert.NoError(t, err)
	return raw
}

// --------------------- CreateForm ---------------------
func TestCreateForm_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().SaveForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.Equal(t, uint(10), f.UserID)
		assert.True(t, f.IsActive)
		f.ID = 1
		return nil
	})

	dto, err := svc.CreateForm(10, form.CreateInput{
		Title:  "Conference Registration",
		Fields: sampleFields(),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Conference Registration", dto.Title)
	assert.Len(t, dto.Fields, 2)
}

func TestCreateForm_RejectsEmptyFields(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.CreateForm(10, form.CreateInput{Title: "Empty", Fields: nil})
	assert.Equal(t, ErrInvalidFieldSchema, err)
}

func TestCreateForm_RejectsUnknownFieldType(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.CreateForm(10, form.CreateInput{
		Title:  "Bad",
		Fields: []form.Field{{Name: "x", Label: "X", Type: "color"}},
	})
	assert.Equal(t, ErrInvalidFieldSchema, err)
}

func TestCreateForm_CustomURLCharset(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	bad := "has spaces!"
	_, err := svc.CreateForm(10, form.CreateInput{
		Title:     "Bad URL",
		Fields:    sampleFields(),
		CustomURL: &bad,
	})
	assert.Equal(t, ErrInvalidCustomURL, err)
}

func TestCreateForm_CustomURLConflict(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	taken := "conf-2026"
	mockForm.EXPECT().GetFormByCustomURL("conf-2026").Return(form.Form{ID: 99}, nil)

	_, err := svc.CreateForm(10, form.CreateInput{
		Title:     "Taken URL",
		Fields:    sampleFields(),
		CustomURL: &taken,
	})
	assert.Equal(t, ErrCustomURLTaken, err)
}

// --------------------- Access predicates ---------------------
func TestGetForm_OwnerAllowed(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{
		ID: 1, UserID: 10, Fields: mustJSON(t, sampleFields()),
	}, nil)

	dto, err := svc.GetForm(1, Claims(10, user.RoleUser))
	assert.NoError(t, err)
	assert.Equal(t, uint(1), dto.ID)
}

func TestGetForm_StrangerDenied(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{ID: 1, UserID: 10}, nil)

	_, err := svc.GetForm(1, Claims(11, user.RoleUser))
	assert.Equal(t, ErrFormAccessDenied, err)
}

func TestGetForm_FormManagerAllowed(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{
		ID: 1, UserID: 10, Fields: mustJSON(t, sampleFields()),
	}, nil)

	_, err := svc.GetForm(1, Claims(11, user.RoleFormManager))
	assert.NoError(t, err)
}

// --------------------- DeleteForm ---------------------
func TestDeleteForm_RefusedWithSubmissions(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{ID: 1, UserID: 10}, nil)
	mockForm.EXPECT().CountSubmissions(uint(1)).Return(int64(3), nil)

	err := svc.DeleteForm(1, Claims(10, user.RoleUser))
	assert.Equal(t, ErrFormHasSubmissions, err)
}

func TestDeleteForm_FormManagerCannotDelete(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{ID: 1, UserID: 10}, nil)

	err := svc.DeleteForm(1, Claims(11, user.RoleFormManager))
	assert.Equal(t, ErrFormAccessDenied, err)
}

func TestDeleteForm_OwnerWithNoSubmissions(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{ID: 1, UserID: 10}, nil)
	mockForm.EXPECT().CountSubmissions(uint(1)).Return(int64(0), nil)
	mockForm.EXPECT().DeleteForm(uint(1)).Return(nil)

	err := svc.DeleteForm(1, Claims(10, user.RoleUser))
	assert.NoError(t, err)
}

// --------------------- DuplicateForm ---------------------
func TestDuplicateForm_FreshDraft(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	customURL := "original-url"
	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{
		ID:              1,
		UserID:          10,
		Title:           "Original",
		Fields:          mustJSON(t, sampleFields()),
		CustomURL:       &customURL,
		IsActive:        true,
		AllowEditing:    true,
		SubmissionCount: 42,
	}, nil)
	mockForm.EXPECT().SaveForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.Equal(t, "Original (Copy)", f.Title)
		assert.False(t, f.IsActive)
		assert.True(t, f.AllowEditing)
		assert.Nil(t, f.CustomURL)
		assert.Equal(t, 0, f.SubmissionCount)
		f.ID = 2
		return nil
	})

	dto, err := svc.DuplicateForm(1, Claims(10, user.RoleUser))
	assert.NoError(t, err)
	assert.Equal(t, "Original (Copy)", dto.Title)
}

// --------------------- ToggleStatus ---------------------
func TestToggleStatus_Flips(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{
		ID: 1, UserID: 10, IsActive: true, Fields: mustJSON(t, sampleFields()),
	}, nil)
	mockForm.EXPECT().SaveForm(gomock.Any()).DoAndReturn(func(f *form.Form) error {
		assert.False(t, f.IsActive)
		return nil
	})

	dto, err := svc.ToggleStatus(1, Claims(10, user.RoleUser))
	assert.NoError(t, err)
	assert.False(t, dto.IsActive)
}

// --------------------- GetPublicForm ---------------------
func TestGetPublicForm_HidesInactive(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByCustomURL("secret-form").Return(form.Form{ID: 3, IsActive: false}, nil)

	_, err := svc.GetPublicForm("secret-form", 0)
	assert.Equal(t, ErrFormNotFound, err)
}

func TestGetPublicForm_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetFormByCustomURL("nope").Return(form.Form{}, gorm.ErrRecordNotFound)

	_, err := svc.GetPublicForm("nope", 0)
	assert.Equal(t, ErrFormNotFound, err)
}

func TestAnalytics_LiveCounters(t *testing.T) {
	repos := newTestRepos(t)
	subSvc := NewSubmissionService(repos)
	svc := NewFormService(repos)
	f := seedForm(t, repos, true, false)

	for i := 0; i < 2; i++ {
		_, err := subSvc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
		require.NoError(t, err)
	}

	got, err := svc.Analytics(f.ID, Claims(1, user.RoleUser))
	require.NoError(t, err)
	assert.Equal(t, 2, got.SubmissionCount)
	assert.Equal(t, int64(2), got.ByStatus[submission.StatusPending])
	assert.Equal(t, int64(2), got.Today)
	assert.Equal(t, int64(2), got.ThisWeek)
	assert.Equal(t, int64(2), got.ThisMonth)
	assert.InDelta(t, 2.0, got.AvgPerDay, 0.01)
	assert.Equal(t, int64(2), got.FieldUsage["name"])
	assert.NotContains(t, got.FieldUsage, "phone")
}

func TestAnalytics_StrangerDenied(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewFormService(repos)
	f := seedForm(t, repos, true, false)

	_, err := svc.Analytics(f.ID, Claims(99, user.RoleUser))
	assert.Equal(t, ErrFormAccessDenied, err)
}
