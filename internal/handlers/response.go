package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/dimitrije/handlepick/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

func respondError(c *drift.Context, code int, message string) {
	c.ErrorWithData(code, dto.ErrorResponse{Error: message})
}

// respondInternal logs err and answers with the generic 500 body. The error
// text is attached as details only when withDetails is set.
func respondInternal(c *drift.Context, op string, err error, withDetails bool) {
	log.Printf("%s %s: %s: %v", c.Method(), c.Path(), op, err)

	resp := dto.ErrorResponse{Error: dto.ErrInternal}
	if withDetails {
		details := err.Error()
		resp.Details = &details
	}
	c.ErrorWithData(http.StatusInternalServerError, resp)
}

// storeContext bounds every store call made while serving c.
func storeContext(c *drift.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
