package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSuperAdminDelete   = errors.New("super admin accounts cannot be deleted")

	ErrFormNotFound       = errors.New("form not found")
	ErrFormInactive       = errors.New("form is not accepting submissions")
	ErrFormAccessDenied   = errors.New("not allowed to access this form")
	ErrCustomURLTaken     = errors.New("custom url already in use")
	ErrInvalidCustomURL   = errors.New("custom url must be 3-50 characters of letters, digits, underscore or hyphen")
	ErrFormHasSubmissions = errors.New("form has submissions and cannot be deleted")
	ErrInvalidFieldSchema = errors.New("invalid field schema")

	ErrSubmissionNotFound = errors.New("submission not found")
	ErrEditingDisabled    = errors.New("editing is not enabled for this form")
	ErrEditCodeMismatch   = errors.New("edit code does not match")
	ErrInvalidStatus      = errors.New("invalid submission status")
	ErrSubmissionLimit    = errors.New("form has reached its submission limit")

	ErrPaymentNotConfigured = errors.New("payment gateway is not configured")
	ErrPaymentNotFound      = errors.New("no payment found for reference")
	ErrPaymentWrongState    = errors.New("payment is not in the required state")
	ErrPaymentWrongMethod   = errors.New("payment reference belongs to a different method")

	ErrInvalidSetting = errors.New("invalid setting type or category")

	ErrExportNotFound = errors.New("export file not found")
)

// ValidationErrors carries per-field messages from schema validation.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return "submission data failed validation"
}
