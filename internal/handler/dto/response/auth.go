package response

import (
	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}
