package model

// Area represents a zone of the game world. The reference lists hold record
// IDs of the entities built inside the area; ordering is preserved for
// display but carries no other meaning.
type Area struct {
	ID        string   `json:"id"`
	Author    string   `json:"author"`
	Name      string   `json:"name"`
	LowLevel  int      `json:"low_level"`
	HighLevel int      `json:"high_level"`
	Flags     []string `json:"flags,omitempty"`
	Rooms     []string `json:"rooms,omitempty"`
	Mobiles   []string `json:"mobiles,omitempty"`
	Objects   []string `json:"objects,omitempty"`
	Shops     []string `json:"shops,omitempty"`
	Resets    []string `json:"resets,omitempty"`
	Specials  []string `json:"specials,omitempty"`
}
