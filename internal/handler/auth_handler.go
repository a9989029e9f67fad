package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mispadamapur/school-api/internal/middleware"
	"github.com/mispadamapur/school-api/internal/service"
	"github.com/mispadamapur/school-api/internal/utils"
)

// AuthHandler serves admin login and signup.
type AuthHandler struct {
	authService *service.AdminAuthService
	limiter     *middleware.LoginRateLimiter
}

func NewAuthHandler(authService *service.AdminAuthService, limiter *middleware.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Message(c, 400, "Email and password required")
		return
	}

	if !h.limiter.Allow(c.ClientIP()) {
		utils.Message(c, 429, "Too many login attempts, try again later")
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		utils.Message(c, 401, "Invalid email or password")
		return
	}

	h.limiter.Reset(c.ClientIP())
	c.JSON(200, gin.H{
		"token": token,
		"name":  user.FullName,
		"email": user.Email,
	})
}

// Signup handles POST /api/admin/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		FullName string `json:"fullName" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Message(c, 400, "Missing required fields")
		return
	}

	user, err := h.authService.Signup(req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrPasswordTooShort):
			utils.Message(c, 400, "Password must be at least 6 characters")
		case errors.Is(err, utils.ErrEmailTaken):
			utils.Message(c, 400, "Email already registered")
		default:
			utils.Message(c, 500, "Failed to create account")
		}
		return
	}

	c.JSON(201, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":       user.ID,
			"fullName": user.FullName,
			"email":    user.Email,
		},
	})
}
