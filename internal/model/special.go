package model

// Special binds a special-behavior function to a mobile in an area.
type Special struct {
	ID       string `json:"id"`
	AreaID   string `json:"area_id"`
	Mobile   string `json:"mobile"`   // mobile record ID
	Function string `json:"function"` // e.g. "spec_cast_mage", "spec_guard"
}
