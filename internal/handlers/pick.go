package handlers

import (
	"net/http"
	"time"

	"github.com/dimitrije/handlepick/internal/services"
	"github.com/dimitrije/handlepick/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type PickHandler struct {
	pickService  PickServiceInterface
	storeTimeout time.Duration
}

func NewPickHandler(pickService PickServiceInterface, storeTimeout time.Duration) *PickHandler {
	return &PickHandler{pickService: pickService, storeTimeout: storeTimeout}
}

// PickRandom returns a random sample of eligible handles without marking
// anything picked.
func (h *PickHandler) PickRandom(c *drift.Context) {
	ctx, cancel := storeContext(c, h.storeTimeout)
	defer cancel()

	handles, err := h.pickService.Peek(ctx, services.BatchSize)
	if err != nil {
		respondInternal(c, "peek handles", err, false)
		return
	}

	_ = c.JSON(http.StatusOK, dto.PickRandomResponse{Handles: handles})
}

// PickManage lists the picked/not-picked partition on GET and commits a new
// batch on POST.
func (h *PickHandler) PickManage(c *drift.Context) {
	if c.Method() == http.MethodPost {
		h.commit(c)
		return
	}
	h.list(c)
}

func (h *PickHandler) list(c *drift.Context) {
	ctx, cancel := storeContext(c, h.storeTimeout)
	defer cancel()

	notPicked, picked, err := h.pickService.List(ctx)
	if err != nil {
		respondInternal(c, "list users", err, false)
		return
	}

	_ = c.JSON(http.StatusOK, dto.PickListResponse{NotPicked: notPicked, Picked: picked})
}

func (h *PickHandler) commit(c *drift.Context) {
	ctx, cancel := storeContext(c, h.storeTimeout)
	defer cancel()

	ids, err := h.pickService.Commit(ctx, services.BatchSize)
	if err != nil {
		respondInternal(c, "commit picks", err, false)
		return
	}

	notPicked, picked, err := h.pickService.List(ctx)
	if err != nil {
		respondInternal(c, "list users after commit", err, false)
		return
	}

	_ = c.JSON(http.StatusOK, dto.PickCommitResponse{
		PickedIDs: ids,
		NotPicked: notPicked,
		Picked:    picked,
	})
}
