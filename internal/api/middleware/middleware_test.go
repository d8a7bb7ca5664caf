package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/ratelimit"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
	"github.com/tahmid-dev/formbuilder-go/internal/repository/mock"
	"github.com/tahmid-dev/formbuilder-go/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------- SecurityHeaders ---------------------
func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", okHandler)

	w := perform(r, http.MethodGet, "/", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
	assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

// --------------------- CORS ---------------------
func TestCORS_AllowedOriginEchoed(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/", okHandler)

	w := perform(r, http.MethodGet, "/", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnlistedOriginGetsNoHeaders(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/", okHandler)

	w := perform(r, http.MethodGet, "/", map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_WildcardAdmitsAny(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/", okHandler)

	w := perform(r, http.MethodGet, "/", map[string]string{"Origin": "http://anything.example"})
	assert.Equal(t, "http://anything.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.POST("/", okHandler)

	w := perform(r, http.MethodOptions, "/", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --------------------- RateLimit ---------------------
func TestRateLimit_QuotaHeadersAnd429(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 2, time.Minute)
	r := gin.New()
	r.Use(RateLimit(limiter, false))
	r.GET("/api/forms", okHandler)

	w := perform(r, http.MethodGet, "/api/forms", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))

	perform(r, http.MethodGet, "/api/forms", nil)

	w = perform(r, http.MethodGet, "/api/forms", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimit_DevBypassSkipsHealth(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 1, time.Minute)
	r := gin.New()
	r.Use(RateLimit(limiter, true))
	r.GET("/api/health", okHandler)

	for i := 0; i < 5; i++ {
		w := perform(r, http.MethodGet, "/api/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimit_BypassDisabledInProduction(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 1, time.Minute)
	r := gin.New()
	r.Use(RateLimit(limiter, false))
	r.GET("/api/health", okHandler)

	perform(r, http.MethodGet, "/api/health", nil)
	w := perform(r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// --------------------- JWTAuth ---------------------
func jwtRouter(t *testing.T) (*gin.Engine, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}

	r := gin.New()
	r.GET("/me", JWTAuth(repos, "test-secret"), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": u.Username})
	})
	return r, mockUser
}

func TestJWTAuth_ValidToken(t *testing.T) {
	r, mockUser := jwtRouter(t)

	usr := user.User{ID: 1, Username: "alice", Role: user.RoleUser, IsActive: true}
	token, err := GenerateToken(&usr, "test-secret", time.Hour)
	require.NoError(t, err)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(usr, nil)

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r, _ := jwtRouter(t)

	w := perform(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	r, _ := jwtRouter(t)

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	r, _ := jwtRouter(t)

	usr := user.User{ID: 1, Username: "alice", Role: user.RoleUser, IsActive: true}
	token, err := GenerateToken(&usr, "test-secret", -time.Hour)
	require.NoError(t, err)

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_DeactivatedUserRejected(t *testing.T) {
	r, mockUser := jwtRouter(t)

	usr := user.User{ID: 2, Username: "bob", Role: user.RoleUser, IsActive: true}
	token, err := GenerateToken(&usr, "test-secret", time.Hour)
	require.NoError(t, err)

	usr.IsActive = false
	mockUser.EXPECT().GetUserByID(uint(2)).Return(usr, nil)

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_DeletedUserRejected(t *testing.T) {
	r, mockUser := jwtRouter(t)

	usr := user.User{ID: 3, Username: "gone", Role: user.RoleUser, IsActive: true}
	token, err := GenerateToken(&usr, "test-secret", time.Hour)
	require.NoError(t, err)

	mockUser.EXPECT().GetUserByID(uint(3)).Return(user.User{}, gorm.ErrRecordNotFound)

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RoleRefreshedFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}

	r := gin.New()
	r.GET("/role", JWTAuth(repos, "test-secret"), func(c *gin.Context) {
		v, _ := c.Get("claims")
		claims := v.(*types.Claims)
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})

	usr := user.User{ID: 4, Username: "promoted", Role: user.RoleUser, IsActive: true}
	token, err := GenerateToken(&usr, "test-secret", time.Hour)
	require.NoError(t, err)

	usr.Role = user.RoleAdmin
	mockUser.EXPECT().GetUserByID(uint(4)).Return(usr, nil)

	w := perform(r, http.MethodGet, "/role", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.RoleAdmin)
}

// --------------------- Role and capability gates ---------------------
func gateRouter(role string, gate gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Set("claims", &types.Claims{UserID: 1, Username: "x", Role: role})
	}, gate, okHandler)
	return r
}

func TestRequireStaff(t *testing.T) {
	auth := NewAuth()

	w := perform(gateRouter(user.RoleUser, auth.RequireStaff()), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(gateRouter(user.RoleFormManager, auth.RequireStaff()), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_SuperAdminAlwaysPasses(t *testing.T) {
	auth := NewAuth()
	gate := auth.RequireRole(user.RoleAdmin)

	w := perform(gateRouter(user.RoleSuperAdmin, gate), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(gateRouter(user.RolePaymentApprover, gate), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireCapability(t *testing.T) {
	auth := NewAuth()
	gate := auth.RequireCapability(user.CapApprovePayments)

	w := perform(gateRouter(user.RolePaymentApprover, gate), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(gateRouter(user.RoleFormManager, gate), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
