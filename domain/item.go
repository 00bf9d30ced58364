package domain

// Item is the body accepted and echoed back by the demo service.
type Item struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax"`
	IsOffer     *bool    `json:"is_offer"`
}

type ItemQuery struct {
	ItemID int     `json:"item_id"`
	Q      *string `json:"q"`
}
