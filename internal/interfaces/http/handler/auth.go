package handler

import (
	"github.com/devlink/backend/internal/application/identity"
	"github.com/devlink/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and authentication requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	authGuard   gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, authGuard gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		authGuard:   authGuard,
	}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration details"
// @Success      201 {object} dto.Response{data=identity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req := middleware.BoundBody[RegisterRequest](c)

	result, err := h.authService.Register(c.Request.Context(), identity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login godoc
// @Summary      Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} dto.Response{data=identity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := middleware.BoundBody[LoginRequest](c)

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CurrentUser godoc
// @Summary      Get the authenticated account
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=identity.UserResult}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}

	result, err := h.authService.CurrentUser(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers all auth routes. Body validation runs before the
// auth guard on every route that has both.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", middleware.BindJSON[RegisterRequest](), h.Register)
		auth.POST("/login", middleware.BindJSON[LoginRequest](), h.Login)
		auth.GET("/me", h.authGuard, h.CurrentUser)
	}
}
