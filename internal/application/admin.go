package application

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
)

type AdminService struct {
	Repos *repository.Repos
}

func NewAdminService(repos *repository.Repos) *AdminService {
	return &AdminService{Repos: repos}
}

// DashboardStats aggregates the counts and recent activity shown on
// the admin landing page.
type DashboardStats struct {
	TotalUsers        int64            `json:"total_users"`
	TotalForms        int64            `json:"total_forms"`
	TotalSubmissions  int64            `json:"total_submissions"`
	ByStatus          map[string]int64 `json:"submissions_by_status"`
	RecentSubmissions []submission.DTO `json:"recent_submissions"`
	RecentUsers       []user.DTO       `json:"recent_users"`
	RecentForms       []form.DTO       `json:"recent_forms"`
}

const recentLimit = 5

func (s *AdminService) Dashboard() (DashboardStats, error) {
	byStatus, err := s.Repos.Submission.CountByStatus()
	if err != nil {
		return DashboardStats{}, err
	}
	var totalSubs int64
	for _, n := range byStatus {
		totalSubs += n
	}

	recentUsers, totalUsers, err := s.Repos.User.ListUsers(1, recentLimit)
	if err != nil {
		return DashboardStats{}, err
	}
	recentForms, totalForms, err := s.Repos.Form.ListForms(1, recentLimit)
	if err != nil {
		return DashboardStats{}, err
	}
	recentSubs, _, err := s.Repos.Submission.ListSubmissions(submission.ListFilter{Page: 1, PerPage: recentLimit})
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalUsers:       totalUsers,
		TotalForms:       totalForms,
		TotalSubmissions: totalSubs,
		ByStatus:         byStatus,
	}
	for i := range recentUsers {
		stats.RecentUsers = append(stats.RecentUsers, user.ToDTO(&recentUsers[i]))
	}
	for i := range recentForms {
		dto, err := form.ToDTO(&recentForms[i])
		if err != nil {
			return DashboardStats{}, err
		}
		stats.RecentForms = append(stats.RecentForms, dto)
	}
	for i := range recentSubs {
		dto, err := submission.ToDTO(&recentSubs[i])
		if err != nil {
			return DashboardStats{}, err
		}
		stats.RecentSubmissions = append(stats.RecentSubmissions, dto)
	}
	return stats, nil
}

func (s *AdminService) ListUsers(page, limit int) ([]user.DTO, int64, error) {
	users, total, err := s.Repos.User.ListUsers(page, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]user.DTO, 0, len(users))
	for i := range users {
		out = append(out, user.ToDTO(&users[i]))
	}
	return out, total, nil
}

func (s *AdminService) GetUser(id uint) (user.DTO, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.DTO{}, ErrUserNotFound
	}
	return user.ToDTO(&u), nil
}

// CreateUser provisions an account with an explicit role.
func (s *AdminService) CreateUser(input user.CreateUserInput) (user.DTO, error) {
	if !user.ValidRole(input.Role) {
		return user.DTO{}, ErrInvalidRole
	}
	if _, err := s.Repos.User.GetUserByUsername(input.Username); err == nil {
		return user.DTO{}, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.DTO{}, err
	}
	if _, err := s.Repos.User.GetUserByEmail(input.Email); err == nil {
		return user.DTO{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.DTO{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.DTO{}, err
	}

	u := user.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		Role:     input.Role,
		IsActive: true,
	}
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.DTO{}, err
	}
	return user.ToDTO(&u), nil
}

// UpdateUser applies role, activation, contact and password changes.
func (s *AdminService) UpdateUser(id uint, input user.UpdateUserInput) (user.DTO, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.DTO{}, ErrUserNotFound
	}

	if input.Email != nil && *input.Email != u.Email {
		if existing, err := s.Repos.User.GetUserByEmail(*input.Email); err == nil && existing.ID != u.ID {
			return user.DTO{}, ErrEmailTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return user.DTO{}, err
		}
		u.Email = *input.Email
	}
	if input.FullName != nil {
		u.FullName = *input.FullName
	}
	if input.Role != nil {
		if !user.ValidRole(*input.Role) {
			return user.DTO{}, ErrInvalidRole
		}
		u.Role = *input.Role
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.DTO{}, err
		}
		u.Password = string(hashed)
	}

	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.DTO{}, err
	}
	return user.ToDTO(&u), nil
}

// DeleteUser refuses to remove super admin accounts.
func (s *AdminService) DeleteUser(id uint) error {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if u.Role == user.RoleSuperAdmin {
		return ErrSuperAdminDelete
	}
	return s.Repos.User.DeleteUser(id)
}
