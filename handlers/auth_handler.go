package handlers

import (
	"errors"

	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, helper: httpHelper}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			h.helper.SendUnauthorizedError(c, "Invalid credentials")
			return
		}
		h.helper.SendServiceError(c, err)
		return
	}

	h.helper.SendSuccess(c, "Login successful", resp)
}

// VerifyToken answers whether the bearer token on the request is still
// valid. The auth middleware has already rejected invalid tokens by the time
// this runs.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	userID, _ := c.Get("user_id")

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.helper.SendUnauthorizedError(c, "Token user no longer exists")
		return
	}

	h.helper.SendSuccess(c, "Token is valid", user.Stored())
}
