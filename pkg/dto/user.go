package dto

import (
	"encoding/json"

	"github.com/dimitrije/handlepick/internal/models"
)

// OptionalString tells an absent JSON field apart from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// Null reports whether the field was sent as an explicit null.
func (o OptionalString) Null() bool {
	return o.Set && o.Value == nil
}

type SaveUserRequest struct {
	Name          string         `json:"name"`
	Phone         OptionalString `json:"phone"`
	YoutubeHandle OptionalString `json:"youtubeHandle"`
}

type SaveUserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}
