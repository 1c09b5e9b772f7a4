package model

// Command represents an in-game command binding.
type Command struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Function string `json:"function"` // e.g. "do_look", "do_cast"
	Position string `json:"position,omitempty"`
	Level    int    `json:"level"`
	Log      string `json:"log,omitempty"` // normal, always, never
	Category string `json:"category,omitempty"`
}
