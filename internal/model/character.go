package model

// Character represents an in-game character owned by a player account.
type Character struct {
	ID         string `json:"id"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	Class      string `json:"class,omitempty"`
	Race       string `json:"race,omitempty"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Gold       int    `json:"gold"`
	HP         int    `json:"hp"`
	Mana       int    `json:"mana"`
	Move       int    `json:"move"`
	Room       string `json:"room,omitempty"` // last known room record ID
	Stats      []int  `json:"stats,omitempty"`
}
