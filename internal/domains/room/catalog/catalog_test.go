package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nirvanica/config"
	"nirvanica/internal/domains/room/catalog"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Ledger.TotalRooms = 12

	return cfg
}

func TestCatalog(t *testing.T) {
	cat := catalog.New(newTestConfig())

	t.Run("ListsThreeTypesInDisplayOrder", func(t *testing.T) {
		types := cat.RoomTypes()

		assert.Len(t, types, 3)
		assert.Equal(t, "Ground Floor", types[0].Name)
		assert.Equal(t, "First Floor", types[1].Name)
		assert.Equal(t, "Dormitory", types[2].Name)
	})

	t.Run("EveryTypeSharesTheNightlyRate", func(t *testing.T) {
		for _, roomType := range cat.RoomTypes() {
			assert.Equal(t, float64(1250), roomType.NightlyRate)
		}
	})

	t.Run("UnitCapsSumToTotalInventory", func(t *testing.T) {
		sum := 0
		for _, roomType := range cat.RoomTypes() {
			sum += roomType.MaxQuantity
		}

		assert.Equal(t, cat.TotalRooms(), sum)
	})

	t.Run("FindByID", func(t *testing.T) {
		roomType, ok := cat.Find(catalog.TypeDormitory)

		assert.True(t, ok)
		assert.Equal(t, "Dormitory", roomType.Name)
		assert.Equal(t, 1, roomType.MaxQuantity)
	})

	t.Run("FindUnknownID", func(t *testing.T) {
		_, ok := cat.Find("penthouse")

		assert.False(t, ok)
	})
}
