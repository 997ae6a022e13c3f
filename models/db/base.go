package dbmodels

import (
	"time"
)

// BaseModel is the common part of every stored record. CreatedAt is set once
// on insert; UpdatedAt is refreshed on every mutation.
type BaseModel struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
