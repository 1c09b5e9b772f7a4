package model

// Room represents a single location inside an area.
type Room struct {
	ID          string   `json:"id"`
	AreaID      string   `json:"area_id"`
	Vnum        int      `json:"vnum"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	SectorType  string   `json:"sector_type,omitempty"`
	Flags       []string `json:"flags,omitempty"`
	Exits       []Exit   `json:"exits,omitempty"`
}

// Exit links a room to a neighboring room in one direction.
type Exit struct {
	Direction string   `json:"direction"` // north, east, south, west, up, down
	ToRoom    string   `json:"to_room"`
	Keyword   string   `json:"keyword,omitempty"`
	Flags     []string `json:"flags,omitempty"` // door, closed, locked, pickproof
}

// Sector type constants
const (
	SectorInside   = "inside"
	SectorCity     = "city"
	SectorField    = "field"
	SectorForest   = "forest"
	SectorHills    = "hills"
	SectorMountain = "mountain"
	SectorWater    = "water"
	SectorAir      = "air"
	SectorDesert   = "desert"
)
