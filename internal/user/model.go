package user

import "time"

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	RoomNumber string    `json:"room_number,omitempty"`
	IsAdmin    bool      `json:"is_admin"`
	CreatedAt  time.Time `json:"created_at"`

	// Never serialized; only the repository touches it.
	PasswordHash string `json:"-"`
}
