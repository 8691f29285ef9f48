package room

import (
	"net/http"
	"nirvanica/infras/otel"
	"nirvanica/internal/domains/room/catalog"
	"nirvanica/shared/constant"
	"nirvanica/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	catalog catalog.Catalog
	otel    otel.Otel
}

func New(catalog catalog.Catalog, otel otel.Otel) Handler {
	return Handler{
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomTypes)
	})
}

// GetRoomTypes lists the fixed room catalog.
// @Summary List room types
// @Description List the property's room categories with nightly rates and unit caps.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]model.RoomType] "Room types"
// @Router /v1/rooms [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.catalog.RoomTypes())
}
