package model

// Shop represents a store run by a keeper mobile inside an area.
type Shop struct {
	ID         string   `json:"id"`
	AreaID     string   `json:"area_id"`
	Keeper     string   `json:"keeper"` // mobile record ID
	BuyTypes   []string `json:"buy_types,omitempty"`
	ProfitBuy  int      `json:"profit_buy"`
	ProfitSell int      `json:"profit_sell"`
	OpenHour   int      `json:"open_hour"`
	CloseHour  int      `json:"close_hour"`
}
