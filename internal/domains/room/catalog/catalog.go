package catalog

import (
	"nirvanica/config"
	"nirvanica/internal/domains/room/model"
)

const (
	TypeGroundFloor = "ground-floor"
	TypeFirstFloor  = "first-floor"
	TypeDormitory   = "dormitory"
)

// roomTypes is the fixed inventory of the property. Rates and unit counts
// match the published tariff card.
var roomTypes = []model.RoomType{
	{ID: TypeGroundFloor, Name: "Ground Floor", NightlyRate: 1250, MaxQuantity: 4},
	{ID: TypeFirstFloor, Name: "First Floor", NightlyRate: 1250, MaxQuantity: 7},
	{ID: TypeDormitory, Name: "Dormitory", NightlyRate: 1250, MaxQuantity: 1},
}

// Catalog exposes the fixed room inventory.
type Catalog interface {
	RoomTypes() []model.RoomType
	Find(id string) (model.RoomType, bool)
	TotalRooms() int
}

type catalogImpl struct {
	config *config.Config
	byID   map[string]model.RoomType
}

func New(config *config.Config) Catalog {
	byID := make(map[string]model.RoomType, len(roomTypes))
	for _, roomType := range roomTypes {
		byID[roomType.ID] = roomType
	}

	return &catalogImpl{
		config: config,
		byID:   byID,
	}
}

// RoomTypes returns the room categories in display order.
func (c *catalogImpl) RoomTypes() []model.RoomType {
	types := make([]model.RoomType, len(roomTypes))
	copy(types, roomTypes)

	return types
}

func (c *catalogImpl) Find(id string) (model.RoomType, bool) {
	roomType, ok := c.byID[id]

	return roomType, ok
}

// TotalRooms returns the number of physical rooms on the property. It caps
// how many rooms a single reservation may hold and anchors the occupancy
// percentage on the dashboard.
func (c *catalogImpl) TotalRooms() int {
	return c.config.Ledger.TotalRooms
}
