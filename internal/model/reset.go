package model

// Reset represents a repopulation instruction executed when an area resets:
// load a mobile into a room, place an object, open a door, and so on.
type Reset struct {
	ID      string `json:"id"`
	AreaID  string `json:"area_id"`
	Command string `json:"command"` // M, O, P, G, E, D, R
	Arg1    int    `json:"arg1"`
	Arg2    int    `json:"arg2"`
	Arg3    int    `json:"arg3"`
	Comment string `json:"comment,omitempty"`
}

// Reset command constants
const (
	ResetLoadMobile  = "M"
	ResetLoadObject  = "O"
	ResetPutObject   = "P"
	ResetGiveObject  = "G"
	ResetEquipObject = "E"
	ResetSetDoor     = "D"
	ResetRandomExits = "R"
)
