package handlers

import (
	"errors"
	"net/http"

	"github.com/dimitrije/handlepick/internal/middleware"
	"github.com/dimitrije/handlepick/internal/services"
	"github.com/dimitrije/handlepick/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// AdminHandler serves the static-credential admin channel.
type AdminHandler struct {
	credentials  CredentialServiceInterface
	secureCookie bool
}

func NewAdminHandler(credentials CredentialServiceInterface, secureCookie bool) *AdminHandler {
	return &AdminHandler{credentials: credentials, secureCookie: secureCookie}
}

func (h *AdminHandler) SimpleLogin(c *drift.Context) {
	var req dto.SimpleLoginRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	if err := h.credentials.Check(req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondInternal(c, "check credentials", err, false)
		return
	}

	middleware.SetAdminCookie(c, h.secureCookie)
	_ = c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *AdminHandler) SimpleLogout(c *drift.Context) {
	middleware.ClearAdminCookie(c, h.secureCookie)
	_ = c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
