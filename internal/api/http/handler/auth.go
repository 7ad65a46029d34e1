package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/server/internal/logger"
	"github.com/taskhub/server/internal/model"
	"github.com/taskhub/server/internal/service"
)

// AuthService defines signup and login operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
}

// Auth handles the signup and login endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the client-facing account shape. The password hash has
// no representation here at all.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// SignUp handles POST /api/auth/signup.
func (h *Auth) SignUp(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSessionResponse(session))
}

// Login handles POST /api/auth/login.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func newSessionResponse(session service.Session) sessionResponse {
	return sessionResponse{
		User:  newUserResponse(session.User),
		Token: session.Token,
	}
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}
