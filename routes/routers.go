package routes

import (
	"hotel-admin/controllers"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// SetupRoutes registra todos los endpoints del servicio. Todas las vistas
// son proyecciones de solo lectura sobre el snapshot; la única escritura es
// el refresco forzado.
func SetupRoutes(router *gin.Engine, snap *services.SnapshotService, grid *services.GridService, m *melody.Melody) {

	roomController := controllers.NewRoomController(snap)
	reservationController := controllers.NewReservationController(snap)
	gridController := controllers.NewGridController(snap, grid)
	healthController := controllers.NewHealthController(snap, grid, m)

	v1 := router.Group("/api/v1")

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/roomStatus", gridController.GetRoomStatus)

	v1.GET("/reservations", reservationController.GetReservations)
	v1.GET("/reservations/active-by-room/:number", reservationController.GetActiveByRoom)
	v1.POST("/reservations/check", reservationController.CheckConflict)
	v1.GET("/search", reservationController.SearchReservations)

	v1.GET("/grid", gridController.GetRoomGrid)
	v1.GET("/timeline", gridController.GetTimeline)
	v1.GET("/calendar", gridController.GetCalendar)
	v1.GET("/availability-grid", gridController.GetAvailabilityGrid)

	v1.GET("/health", healthController.Health)
	v1.POST("/refresh", healthController.Refresh)
}
