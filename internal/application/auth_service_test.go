package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tahmid-dev/formbuilder-go/internal/api/middleware"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
	"github.com/tahmid-dev/formbuilder-go/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupAuthServiceMocks(t *testing.T) (*AuthService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewAuthService(repos, "test-secret", time.Hour)
	return svc, mockUser
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleUser, u.Role)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "secret123", u.Password)
		u.ID = 7
		return nil
	})

	dto, token, err := svc.Register(user.RegisterInput{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", dto.Username)
	assert.Equal(t, user.RoleUser, dto.Role)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{ID: 1}, nil)

	_, _, err := svc.Register(user.RegisterInput{Username: "bob", Email: "bob@test.com", Password: "secret123"})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("carol").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().GetUserByEmail("carol@test.com").Return(user.User{ID: 2}, nil)

	_, _, err := svc.Register(user.RegisterInput{Username: "carol", Email: "carol@test.com", Password: "secret123"})
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- Login ---------------------
func TestLogin_SuccessByUsername(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	usr := user.User{ID: 1, Username: "bob", Email: "bob@test.com", Password: hashOf(t, "secret123"), Role: user.RoleUser, IsActive: true}
	mockUser.EXPECT().GetUserByIdentifier("bob").Return(usr, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NotNil(t, u.LastLogin)
		return nil
	})

	dto, token, err := svc.Login("bob", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "bob", dto.Username)
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	mockUser.EXPECT().GetUserByIdentifier("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_InactiveAccountSameError(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	usr := user.User{ID: 3, Username: "dora", Password: hashOf(t, "secret123"), IsActive: false}
	mockUser.EXPECT().GetUserByIdentifier("dora").Return(usr, nil)

	_, _, err := svc.Login("dora", "secret123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_WrongPasswordSameError(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	usr := user.User{ID: 4, Username: "eve", Password: hashOf(t, "secret123"), IsActive: true}
	mockUser.EXPECT().GetUserByIdentifier("eve").Return(usr, nil)

	_, _, err := svc.Login("eve", "not-the-password")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- RefreshToken ---------------------
func TestRefreshToken_ReissuesForActiveUser(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	usr := user.User{ID: 5, Username: "frank", Role: user.RoleUser, IsActive: true}
	token, err := middleware.GenerateToken(&usr, "test-secret", time.Hour)
	assert.NoError(t, err)

	mockUser.EXPECT().GetUserByID(uint(5)).Return(usr, nil)

	fresh, err := svc.RefreshToken(token)
	assert.NoError(t, err)
	assert.NotEmpty(t, fresh)
}

func TestRefreshToken_RejectsInactiveUser(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	usr := user.User{ID: 6, Username: "gina", Role: user.RoleUser, IsActive: true}
	token, err := middleware.GenerateToken(&usr, "test-secret", time.Hour)
	assert.NoError(t, err)

	usr.IsActive = false
	mockUser.EXPECT().GetUserByID(uint(6)).Return(usr, nil)

	_, err = svc.RefreshToken(token)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestRefreshToken_RejectsGarbage(t *testing.T) {
	svc, _ := setupAuthServiceMocks(t)

	_, err := svc.RefreshToken("not.a.token")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- ChangePassword ---------------------
func TestChangePassword_Success(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	usr := user.User{ID: 8, Username: "hana", Password: hashOf(t, "oldpass99")}
	mockUser.EXPECT().GetUserByID(uint(8)).Return(usr, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newpass99")))
		return nil
	})

	err := svc.ChangePassword(8, "oldpass99", "newpass99")
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, mockUser := setupAuthServiceMocks(t)

	usr := user.User{ID: 9, Username: "ivan", Password: hashOf(t, "oldpass99")}
	mockUser.EXPECT().GetUserByID(uint(9)).Return(usr, nil)

	err := svc.ChangePassword(9, "wrong", "newpass99")
	assert.Equal(t, ErrIncorrectPassword, err)
}
