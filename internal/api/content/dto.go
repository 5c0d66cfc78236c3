package content

import "lafaek-backend/internal/domain/content"

// ---------- responses

// ListResponse is the envelope every listing endpoint answers with.
// Errors ride the same shape so clients only parse one thing.
type ListResponse struct {
	OK    bool             `json:"ok"`
	Items []content.Record `json:"items"`
	Error string           `json:"error,omitempty"`
}

type SaveResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ---------- requests

type SaveCollectionRequest struct {
	Items []content.Record `json:"items" binding:"required"`
}
