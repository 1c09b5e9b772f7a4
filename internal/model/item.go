package model

// Item represents an object template. Items are referenced from area object
// lists by ID but are not area-owned; they survive area deletion.
type Item struct {
	ID               string   `json:"id"`
	Vnum             int      `json:"vnum"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description,omitempty"`
	Description      string   `json:"description,omitempty"`
	ItemType         string   `json:"item_type,omitempty"` // weapon, armor, potion, ...
	Level            int      `json:"level"`
	Weight           int      `json:"weight"`
	Cost             int      `json:"cost"`
	ExtraFlags       []string `json:"extra_flags,omitempty"`
	WearFlags        []string `json:"wear_flags,omitempty"`
	Values           []int    `json:"values,omitempty"` // type-specific value slots
}
