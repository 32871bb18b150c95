package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListUsersQuery struct {
	Wilaya  string
	Commune string
	Q       string
}

// UserInscription is one registration of the user, as the caller may see it.
type UserInscription struct {
	ID            uuid.UUID `json:"id"`
	ActivityID    uuid.UUID `json:"activity_id"`
	ActivityKind  string    `json:"activity_kind"`
	ActivityTitle string    `json:"activity_title"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
