package model

// Class represents a playable character class.
type Class struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WhoName        string `json:"who_name,omitempty"` // three-letter display tag
	PrimeAttribute string `json:"prime_attribute,omitempty"`
	FirstWeapon    string `json:"first_weapon,omitempty"`
	SkillAdept     int    `json:"skill_adept"`
	Thac0          int    `json:"thac0"`
	Thac32         int    `json:"thac32"`
	HPMin          int    `json:"hp_min"`
	HPMax          int    `json:"hp_max"`
	UsesMana       bool   `json:"uses_mana"`
}
