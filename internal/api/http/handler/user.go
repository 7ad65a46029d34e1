package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taskhub/server/internal/apierr"
	"github.com/taskhub/server/internal/logger"
	"github.com/taskhub/server/internal/model"
)

// ProfileService loads the account behind an authenticated request.
type ProfileService interface {
	Profile(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// User handles the protected profile endpoint.
type User struct {
	profileService ProfileService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(profileService ProfileService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		profileService: profileService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type profileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile handles GET /api/user. The identity comes from the claims the
// token middleware attached; the account row can still have vanished
// between issuance and this lookup.
func (h *User) Profile(c *gin.Context) {
	claims, ok := h.contextManager.GetClaimsFromContext(c.Request.Context())
	if !ok {
		apiErr := apierr.NewErrInvalidToken()
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
		return
	}

	user, err := h.profileService.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}
