package model

const (
	EntityName = "room type"
)

// RoomType is one bookable room category with a fixed nightly rate and a cap
// on how many units of it exist on the property.
type RoomType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NightlyRate float64 `json:"nightly_rate"`
	MaxQuantity int     `json:"max_quantity"`
}
