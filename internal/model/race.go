package model

// Race represents a playable or mobile race.
type Race struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	WhoName     string   `json:"who_name,omitempty"`
	Playable    bool     `json:"playable"`
	Points      int      `json:"points"`
	Size        string   `json:"size,omitempty"`
	ActFlags    []string `json:"act_flags,omitempty"`
	AffectFlags []string `json:"affect_flags,omitempty"`
	Stats       []int    `json:"stats,omitempty"` // str, int, wis, dex, con
}
