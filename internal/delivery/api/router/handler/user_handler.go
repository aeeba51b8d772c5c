package handler

import (
	"net/http"
	"time"

	"seely/internal/delivery/api/response"
	"seely/internal/delivery/api/validator"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler serves local account registration and profiles
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
	}
}

// RegisterUserRequest represents the request body for a local account
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

// ProfileResponse is the public view of a user. Hashes and subjects never leave the service.
type ProfileResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	Federated   bool      `json:"federated"`
	HasPassword bool      `json:"hasPassword"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newProfileResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:          user.ID,
		Username:    user.Username,
		Role:        user.Role.String(),
		Federated:   user.IsFederated(),
		HasPassword: user.HasPassword(),
		CreatedAt:   user.CreatedAt,
	}
}

// Register creates a local account
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid registration input", validator.FieldErrors(err))
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProfileResponse(user))
}

// Me returns the profile of the authenticated caller
func (h *UserHandler) Me(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	return h.profile(c, claims.Username)
}

// GetByUsername returns any user's profile
func (h *UserHandler) GetByUsername(c echo.Context) error {
	return h.profile(c, c.Param("username"))
}

func (h *UserHandler) profile(c echo.Context, username string) error {
	user, err := h.userUC.GetProfile(c.Request().Context(), username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(user))
}
