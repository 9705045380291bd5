package handlers

import (
	"net/http"

	"devconnect/config"
	"devconnect/helper"
	"devconnect/middleware"
	"devconnect/models"
	"devconnect/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  services.AuthService
	helper       *helper.HTTPHelper
	cookieMaxAge int
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		helper:       httpHelper,
		cookieMaxAge: int(jwtCfg.ExpireTime.Seconds()),
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidatePayload(c, &req) {
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.setSessionCookie(c, response.Token)
	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidatePayload(c, &req) {
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.setSessionCookie(c, response.Token)
	c.JSON(http.StatusOK, response)
}

// Logout clears the cookie and nothing else: there is no server-side
// session to invalidate, so an already-issued token keeps working until
// it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		h.helper.SendUnauthorizedError(c, "User not found in context")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", false, true)
}
