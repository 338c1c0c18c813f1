package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/user/usecases"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/constants"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type AuthHandler struct {
	registerUC usecases.RegisterUserExecutor
	loginUC    usecases.LoginUserExecutor
	refreshUC  usecases.RefreshTokenExecutor
	logoutUC   usecases.LogoutUserExecutor
	getUserUC  usecases.GetUserExecutor
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginUserExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	logoutUC usecases.LogoutUserExecutor,
	getUserUC usecases.GetUserExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		logoutUC:   logoutUC,
		getUserUC:  getUserUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Only an authenticated admin may create non-customer accounts.
	role := string(authorization.RoleCustomer)
	if req.Role != "" && currentUserRole(c) == string(authorization.RoleAdmin) {
		role = req.Role
	}

	cmd := usecases.RegisterUserCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     role,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newUserResponse(result), "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := &LoginResponse{
		User:         newUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    result.ExpiresIn,
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RefreshTokenCommand{RefreshToken: req.RefreshToken}

	result, err := h.refreshUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := &RefreshResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    result.ExpiresIn,
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Get(constants.ContextKeyToken)
	tokenStr, _ := token.(string)

	expiresAt := time.Now().Add(24 * time.Hour)
	if v, exists := c.Get(constants.ContextKeyTokenExpiry); exists {
		if t, ok := v.(time.Time); ok {
			expiresAt = t
		}
	}

	cmd := usecases.LogoutUserCommand{
		Token:     tokenStr,
		ExpiresAt: expiresAt,
	}

	if err := h.logoutUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	cmd := usecases.GetUserCommand{UserID: currentUserID(c)}

	result, err := h.getUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newUserResponse(result))
}
