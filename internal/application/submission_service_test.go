package application

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/payment"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/setting"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

// newTestRepos opens a fresh in-memory database per test.
func newTestRepos(t *testing.T) *repository.Repos {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&user.User{},
		&form.Form{},
		&submission.Submission{},
		&payment.Payment{},
		&setting.Setting{},
	))
	return repository.NewRepositories(conn)
}

func seedForm(t *testing.T, repos *repository.Repos, active, allowEditing bool) form.Form {
	t.Helper()
	fields := mustJSON(t, []form.Field{
		{Name: "name", Label: "Full Name", Type: form.FieldText, Required: true},
		{Name: "email", Label: "Email", Type: form.FieldEmail, Required: true},
		{Name: "phone", Label: "Phone", Type: form.FieldTel},
		{Name: "bio", Label: "Bio", Type: form.FieldText, MinLength: 5, MaxLength: 20},
	})
	f := form.Form{
		UserID:       1,
		Title:        "Conference Signup",
		Fields:       datatypes.JSON(fields),
		Settings:     datatypes.JSON(mustJSON(t, form.Settings{RequiresPayment: true, PaymentAmount: 50, PaymentCurrency: "USD"})),
		IsActive:     active,
		AllowEditing: allowEditing,
	}
	require.NoError(t, repos.Form.SaveForm(&f))
	return f
}

func validData() map[string]any {
	return map[string]any{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	}
}

// --------------------- ValidateData ---------------------
func TestValidateData_Messages(t *testing.T) {
	fields := []form.Field{
		{Name: "name", Label: "Name", Type: form.FieldText, Required: true},
		{Name: "email", Label: "Email", Type: form.FieldEmail},
		{Name: "age", Label: "Age", Type: form.FieldNumber},
		{Name: "phone", Label: "Phone", Type: form.FieldTel},
		{Name: "site", Label: "Site", Type: form.FieldURL},
		{Name: "bio", Label: "Bio", Type: form.FieldText, MinLength: 5, MaxLength: 10},
	}

	cases := []struct {
		name    string
		data    map[string]any
		field   string
		message string
	}{
		{"required missing", map[string]any{}, "name", "This field is required"},
		{"bad email", map[string]any{"name": "x", "email": "not-an-email"}, "email", "Invalid email format"},
		{"bad number", map[string]any{"name": "x", "age": "twelve"}, "age", "Must be a number"},
		{"bad phone", map[string]any{"name": "x", "phone": "123"}, "phone", "Invalid phone number format"},
		{"bad url", map[string]any{"name": "x", "site": "notaurl"}, "site", "Invalid URL format"},
		{"too short", map[string]any{"name": "x", "bio": "hey"}, "bio", "Must be at least 5 characters"},
		{"too long", map[string]any{"name": "x", "bio": "this is far too long"}, "bio", "Must not exceed 10 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateData(fields, tc.data)
			require.NotNil(t, errs)
			assert.Equal(t, tc.message, errs[tc.field])
		})
	}
}

func TestValidateData_CleanPayload(t *testing.T) {
	fields := []form.Field{
		{Name: "name", Label: "Name", Type: form.FieldText, Required: true},
		{Name: "email", Label: "Email", Type: form.FieldEmail},
		{Name: "age", Label: "Age", Type: form.FieldNumber},
	}
	errs := ValidateData(fields, map[string]any{
		"name":  "Grace",
		"email": "grace@navy.mil",
		"age":   float64(37),
	})
	assert.Nil(t, errs)
}

func TestValidateData_OptionalEmptySkipsTypeChecks(t *testing.T) {
	fields := []form.Field{
		{Name: "email", Label: "Email", Type: form.FieldEmail},
	}
	assert.Nil(t, ValidateData(fields, map[string]any{}))
	assert.Nil(t, ValidateData(fields, map[string]any{"email": ""}))
}

// --------------------- Generators ---------------------
func TestGenerateUniqueID_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{1,4}\d{4}-\d{6}$`)

	assert.Regexp(t, pattern, GenerateUniqueID("Conference Signup"))
	assert.Regexp(t, pattern, GenerateUniqueID("abc"))
	assert.Regexp(t, pattern, GenerateUniqueID("2024 (numbers only)"))

	id := GenerateUniqueID("Conference Signup")
	assert.Equal(t, "CONF", id[:4])
}

func TestGenerateEditCode_Charset(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateEditCode()
		assert.Regexp(t, pattern, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}

// --------------------- Create ---------------------
func TestCreateSubmission_Success(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, false)

	dto, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "203.0.113.9", "test-agent")
	require.NoError(t, err)

	assert.Equal(t, submission.StatusPending, dto.Status)
	assert.Equal(t, submission.PayPending, dto.PaymentStatus)
	assert.Equal(t, float64(50), dto.PaymentAmount)
	assert.Regexp(t, `^[A-Z]{1,4}\d{4}-\d{6}$`, dto.UniqueID)
	assert.Len(t, dto.EditCode, 8)

	stored, err := repos.Submission.GetSubmissionByUniqueID(dto.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.9", stored.SubmitterIP)

	updated, err := repos.Form.GetFormByID(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.SubmissionCount)
}

func TestCreateSubmission_InactiveForm(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, false, false)

	_, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
	assert.Equal(t, ErrFormInactive, err)
}

func TestCreateSubmission_ValidationFailure(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, false)

	_, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: map[string]any{"email": "bad"}}, "", "")
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "This field is required", verrs["name"])
	assert.Equal(t, "Invalid email format", verrs["email"])
}

// --------------------- UpdatePublic ---------------------
func TestUpdatePublic_Success(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, true)

	created, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
	require.NoError(t, err)

	data := validData()
	data["name"] = "Ada King"
	dto, err := svc.UpdatePublic(created.UniqueID, submission.PublicUpdateInput{EditCode: created.EditCode, Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Ada King", dto.Data["name"])
	assert.Len(t, dto.EditHistory, 1)
	assert.Equal(t, "public", dto.EditHistory[0].Source)
}

func TestUpdatePublic_WrongEditCode(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, true)

	created, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
	require.NoError(t, err)

	_, err = svc.UpdatePublic(created.UniqueID, submission.PublicUpdateInput{EditCode: "WRONGCODE", Data: validData()})
	assert.Equal(t, ErrEditCodeMismatch, err)
}

func TestUpdatePublic_EditingDisabledEvenWithCorrectCode(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, false)

	created, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
	require.NoError(t, err)

	_, err = svc.UpdatePublic(created.UniqueID, submission.PublicUpdateInput{EditCode: created.EditCode, Data: validData()})
	assert.Equal(t, ErrEditingDisabled, err)
}

// --------------------- VerifyEditCode ---------------------
func TestVerifyEditCode(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, true)

	created, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
	require.NoError(t, err)

	assert.NoError(t, svc.VerifyEditCode(created.UniqueID, created.EditCode))
	assert.Equal(t, ErrEditCodeMismatch, svc.VerifyEditCode(created.UniqueID, "NOPE1234"))
	assert.Equal(t, ErrSubmissionNotFound, svc.VerifyEditCode("GHOST2026-000000", created.EditCode))
}

// --------------------- AdminUpdate ---------------------
func TestAdminUpdate_PermissiveOverlay(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, false)

	created, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
	require.NoError(t, err)

	// Any status may follow any other.
	sequence := []string{
		submission.StatusApproved,
		submission.StatusRejected,
		submission.StatusPending,
		submission.StatusCompleted,
	}
	for _, status := range sequence {
		s := status
		dto, err := svc.AdminUpdate(created.ID, submission.AdminUpdateInput{Status: &s})
		require.NoError(t, err)
		assert.Equal(t, status, dto.Status)
	}
}

func TestAdminUpdate_RejectsUnknownStatus(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, false)

	created, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
	require.NoError(t, err)

	bogus := "archived"
	_, err = svc.AdminUpdate(created.ID, submission.AdminUpdateInput{Status: &bogus})
	assert.Equal(t, ErrInvalidStatus, err)
}

// --------------------- Submission limit ---------------------
func TestCreateSubmission_LimitEnforced(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)

	fields := mustJSON(t, []form.Field{{Name: "name", Label: "Name", Type: form.FieldText, Required: true}})
	settingsRaw, err := json.Marshal(form.Settings{SubmissionLimit: 1})
	require.NoError(t, err)
	f := form.Form{UserID: 1, Title: "Limited", Fields: datatypes.JSON(fields), Settings: datatypes.JSON(settingsRaw), IsActive: true}
	require.NoError(t, repos.Form.SaveForm(&f))

	_, err = svc.Create(submission.CreateInput{FormID: f.ID, Data: map[string]any{"name": "first"}}, "", "")
	require.NoError(t, err)

	_, err = svc.Create(submission.CreateInput{FormID: f.ID, Data: map[string]any{"name": "second"}}, "", "")
	assert.Equal(t, ErrSubmissionLimit, err)
}

// --------------------- ListByForm ---------------------
func TestListByForm_ScopedToForm(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, false)
	other := seedForm(t, repos, true, false)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(submission.CreateInput{FormID: f.ID, Data: validData()}, "", "")
		require.NoError(t, err)
	}
	_, err := svc.Create(submission.CreateInput{FormID: other.ID, Data: validData()}, "", "")
	require.NoError(t, err)

	subs, total, err := svc.ListByForm(f.ID, Claims(1, user.RoleUser), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, s := range subs {
		assert.Equal(t, f.ID, s.FormID)
	}
}

func TestListByForm_StrangerDenied(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos)
	f := seedForm(t, repos, true, false)

	_, _, err := svc.ListByForm(f.ID, Claims(99, user.RoleUser), 1, 20)
	assert.Equal(t, ErrFormAccessDenied, err)

	_, _, err = svc.ListByForm(f.ID, Claims(99, user.RoleSubmissionViewer), 1, 20)
	assert.NoError(t, err)
}

func TestListByForm_MissingForm(t *testing.T) {
	svc := NewSubmissionService(newTestRepos(t))

	_, _, err := svc.ListByForm(4040, Claims(1, user.RoleAdmin), 1, 20)
	assert.Equal(t, ErrFormNotFound, err)
}
