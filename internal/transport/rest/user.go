package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/photo-curation-backend/internal/domain"
	"github.com/heartmarshall/photo-curation-backend/internal/service/user"
)

// MsgUserCreated is the success message for user registration.
const MsgUserCreated = "User created successfully"

type userService interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
}

// UserHandler serves the /api/users endpoint.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type createUserResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// CreateUser handles POST /api/users. Success answers 200, not 201.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{Username: req.Username, Email: req.Email})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusBadRequest, domain.MsgEmailAlreadyTaken)
			return
		}
		handleError(r.Context(), h.log, w, err, "Failed to create new user")
		return
	}

	writeJSON(w, http.StatusOK, createUserResponse{
		Message: MsgUserCreated,
		User: userResponse{
			ID:        u.ID.String(),
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		},
	})
}
