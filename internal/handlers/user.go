package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dimitrije/handlepick/internal/middleware"
	"github.com/dimitrije/handlepick/internal/models"
	"github.com/dimitrije/handlepick/internal/services"
	"github.com/dimitrije/handlepick/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type UserHandler struct {
	userService   UserServiceInterface
	storeTimeout  time.Duration
	exposeDetails bool
}

func NewUserHandler(userService UserServiceInterface, storeTimeout time.Duration, exposeDetails bool) *UserHandler {
	return &UserHandler{
		userService:   userService,
		storeTimeout:  storeTimeout,
		exposeDetails: exposeDetails,
	}
}

// Save creates or updates the caller's profile.
func (h *UserHandler) Save(c *drift.Context) {
	email := middleware.GetUserEmail(c)
	if email == "" {
		respondError(c, http.StatusUnauthorized, dto.ErrUnauthorized)
		return
	}

	var req dto.SaveUserRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	ctx, cancel := storeContext(c, h.storeTimeout)
	defer cancel()

	user, err := h.userService.Upsert(ctx, email, models.Profile{
		Name:               req.Name,
		Phone:              req.Phone.Value,
		YoutubeHandle:      req.YoutubeHandle.Value,
		ClearPhone:         req.Phone.Null(),
		ClearYoutubeHandle: req.YoutubeHandle.Null(),
	})
	if err != nil {
		respondInternal(c, "save profile", err, h.exposeDetails)
		return
	}

	_ = c.JSON(http.StatusOK, dto.SaveUserResponse{Success: true, User: user})
}

func (h *UserHandler) GetMe(c *drift.Context) {
	email := middleware.GetUserEmail(c)
	if email == "" {
		respondError(c, http.StatusUnauthorized, dto.ErrUnauthorized)
		return
	}

	ctx, cancel := storeContext(c, h.storeTimeout)
	defer cancel()

	user, err := h.userService.GetByEmail(ctx, email)
	if errors.Is(err, services.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		respondInternal(c, "load profile", err, false)
		return
	}

	_ = c.JSON(http.StatusOK, user)
}
