package model

// Mobile represents an NPC template belonging to an area.
type Mobile struct {
	ID               string   `json:"id"`
	AreaID           string   `json:"area_id"`
	Vnum             int      `json:"vnum"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description,omitempty"`
	LongDescription  string   `json:"long_description,omitempty"`
	Race             string   `json:"race,omitempty"`
	Level            int      `json:"level"`
	Alignment        int      `json:"alignment"`
	Gold             int      `json:"gold"`
	ActFlags         []string `json:"act_flags,omitempty"`
	AffectFlags      []string `json:"affect_flags,omitempty"`
}
