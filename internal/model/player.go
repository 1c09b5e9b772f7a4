package model

// Player represents a player account. Password is accepted on input only;
// the service hashes it into PasswordHash before the record is persisted and
// clears the plaintext.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
	Role         string `json:"role,omitempty"` // player, builder, admin
	Banned       bool   `json:"banned"`
}

// Player role constants
const (
	PlayerRolePlayer  = "player"
	PlayerRoleBuilder = "builder"
	PlayerRoleAdmin   = "admin"
)
