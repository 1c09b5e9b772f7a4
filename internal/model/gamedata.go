package model

// GameData represents a named ruleset table: skill lists, level progressions,
// flag vocabularies, and similar configuration the engine reads at boot.
// Values is an opaque payload keyed however the table needs.
type GameData struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Type   string                 `json:"type,omitempty"` // skills, levels, flags, ...
	Values map[string]interface{} `json:"values,omitempty"`
}
