package dto

import "time"

// CreateStructureRequest is the body for POST /api/structures.
type CreateStructureRequest struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind,omitempty"`
}

// StructureResponse is a temple structure as returned by the API.
type StructureResponse struct {
	ID        string    `json:"id"`
	TempleID  string    `json:"temple_id,omitempty"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StructureListResponse wraps a page of structures.
type StructureListResponse struct {
	Structures []StructureResponse `json:"structures"`
	Page       PageResponse        `json:"page"`
}
