package controllers

import (
	"hotel-admin/response"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
)

// RoomController sirve el snapshot de habitaciones
type RoomController struct {
	snap *services.SnapshotService
}

// NewRoomController crea una instancia nueva de RoomController
func NewRoomController(snap *services.SnapshotService) *RoomController {
	return &RoomController{snap: snap}
}

// GetRooms devuelve las habitaciones ordenadas por piso y número
func (rc *RoomController) GetRooms(c *gin.Context) {
	snapshot := rc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}
	response.Success(c, services.SortRooms(snapshot.Rooms))
}
