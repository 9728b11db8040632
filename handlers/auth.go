package handlers

import (
	"net/http"

	"opdflow/models"
	"opdflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.UserService.Register(req)
	if err != nil {
		logger.Warn("registration failed", zap.Error(err))
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.UserCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.UserService.Authenticate(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, usr)
}

// UpdateFCMTokenHandler handles PUT /api/auth/fcm-token.
func (h *AuthHandler) UpdateFCMTokenHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.UserService.UpdateFCMToken(userID, req.FCMToken); err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "FCM token updated"})
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.UserService.Logout(userID); err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": "Logged out"})
}
