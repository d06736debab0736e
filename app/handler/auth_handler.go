package handler

import (
	"net/http"

	"bitinglip/internal/model"
	"bitinglip/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the mock auth flow. Responses are not enveloped.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login accepts any credentials
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	payload := bindPayload(c)
	req := &model.LoginRequest{}
	if username := optionalString(payload, "username"); username != nil {
		req.Username = *username
	}
	if password := optionalString(payload, "password"); password != nil {
		req.Password = *password
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh issues a new admin session
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	resp, err := h.authService.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile returns the admin profile regardless of the presented token
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, h.authService.Profile(c.Request.Context()))
}

// Logout acknowledges a logout
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.authService.Logout(c.Request.Context())})
}
