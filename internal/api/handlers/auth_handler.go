package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/application"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
	"github.com/tahmid-dev/formbuilder-go/pkg/utils"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	dto, token, err := h.svc.Register(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, gin.H{"user": dto, "token": token}, "Registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	dto, token, err := h.svc.Login(input.Identifier, input.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"user": dto, "token": token}, "Login successful")
}

// Refresh reissues a token from the Authorization header.
func (h *AuthHandler) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(c, "Authorization required")
		return
	}

	token, err := h.svc.RefreshToken(parts[1])
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token}, "Token refreshed")
}

// Logout acknowledges the request. Tokens are stateless so the old
// token stays valid until its own expiry; the client discards it.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, nil, "Logged out")
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}

	dto, err := h.svc.GetProfile(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Profile retrieved")
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}

	var input user.UpdateProfileInput
	if !bindJSON(c, &input) {
		return
	}

	dto, err := h.svc.UpdateProfile(userID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, dto, "Profile updated")
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "Authorization required")
		return
	}

	var input user.ChangePasswordInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.svc.ChangePassword(userID, input.CurrentPassword, input.NewPassword); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, nil, "Password changed")
}
