package dto

import (
	"github.com/dimitrije/handlepick/internal/models"
	"github.com/google/uuid"
)

type PickRandomResponse struct {
	Handles []string `json:"handles"`
}

type PickListResponse struct {
	NotPicked []models.User `json:"notPicked"`
	Picked    []models.User `json:"picked"`
}

type PickCommitResponse struct {
	PickedIDs []uuid.UUID   `json:"pickedIds"`
	NotPicked []models.User `json:"notPicked"`
	Picked    []models.User `json:"picked"`
}
