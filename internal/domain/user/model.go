package user

import (
	"time"

	"gorm.io/gorm"
)

// Role values stored in the role column. super_admin passes every
// capability check; the remaining staff roles carry narrow capability
// sets resolved through Capabilities.
const (
	RoleUser                = "user"
	RoleAdmin               = "admin"
	RoleSuperAdmin          = "super_admin"
	RoleFormManager         = "form_manager"
	RolePaymentApprover     = "payment_approver"
	RoleSubmissionViewer    = "submission_viewer"
	RoleSubmissionEditor    = "submission_editor"
	RoleNotificationManager = "notification_manager"
)

// Capability names checked by the authorization middleware.
const (
	CapManageForms         = "manage_forms"
	CapApprovePayments     = "approve_payments"
	CapViewSubmissions     = "view_submissions"
	CapEditSubmissions     = "edit_submissions"
	CapManageNotifications = "manage_notifications"
	CapManageUsers         = "manage_users"
	CapViewReports         = "view_reports"
)

var roleCapabilities = map[string][]string{
	RoleAdmin: {
		CapManageForms, CapApprovePayments, CapViewSubmissions,
		CapEditSubmissions, CapManageNotifications, CapViewReports,
	},
	RoleFormManager:         {CapManageForms, CapViewSubmissions},
	RolePaymentApprover:     {CapApprovePayments, CapViewSubmissions},
	RoleSubmissionViewer:    {CapViewSubmissions},
	RoleSubmissionEditor:    {CapViewSubmissions, CapEditSubmissions},
	RoleNotificationManager: {CapManageNotifications},
}

// ValidRole reports whether r is one of the known role values.
func ValidRole(r string) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin, RoleFormManager,
		RolePaymentApprover, RoleSubmissionViewer, RoleSubmissionEditor,
		RoleNotificationManager:
		return true
	}
	return false
}

// Capabilities returns the capability set for a role. super_admin
// implicitly has every capability.
func Capabilities(role string) []string {
	if role == RoleSuperAdmin {
		return []string{
			CapManageForms, CapApprovePayments, CapViewSubmissions,
			CapEditSubmissions, CapManageNotifications, CapManageUsers,
			CapViewReports,
		}
	}
	return roleCapabilities[role]
}

// HasCapability reports whether a role grants the named capability.
func HasCapability(role, capability string) bool {
	if role == RoleSuperAdmin {
		return true
	}
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role grants access to the admin surface.
func IsStaff(role string) bool {
	return role != RoleUser && ValidRole(role)
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string         `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	FullName  string         `gorm:"size:100" json:"full_name"`
	Role      string         `gorm:"size:30;not null;default:'user'" json:"role"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
