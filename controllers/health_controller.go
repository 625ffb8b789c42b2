package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"hotel-admin/dto"
	"hotel-admin/response"
	"hotel-admin/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// HealthController reporta la salud del servicio y permite forzar un
// refresco del snapshot
type HealthController struct {
	snap *services.SnapshotService
	grid *services.GridService
	ws   *melody.Melody
}

// NewHealthController crea una instancia nueva de HealthController
func NewHealthController(snap *services.SnapshotService, grid *services.GridService, ws *melody.Melody) *HealthController {
	return &HealthController{snap: snap, grid: grid, ws: ws}
}

// Health reporta si el backend responde y qué tan fresco es el snapshot
func (hc *HealthController) Health(c *gin.Context) {
	snapshot := hc.snap.Snapshot()
	age := "sin datos"
	if !snapshot.Empty() {
		age = snapshot.Age(time.Now()).Round(time.Second).String()
	}
	response.Success(c, dto.HealthResponse{
		UpstreamOK:      hc.snap.UpstreamOK(),
		SnapshotAge:     age,
		Rooms:           len(snapshot.Rooms),
		Reservations:    len(snapshot.Reservations),
		MissingRoomRefs: snapshot.MissingRoomRefs,
	})
}

// Refresh fuerza un refresco inmediato del snapshot, como el que dispara
// el cron, y difunde el resumen nuevo por websocket
func (hc *HealthController) Refresh(c *gin.Context) {
	if err := hc.snap.Refresh(c.Request.Context()); err != nil {
		response.ServiceUnavailable(c, fmt.Sprintf("No se pudo refrescar: %v", err))
		return
	}

	summary := hc.grid.Summary(hc.snap.Snapshot(), time.Now())
	if hc.ws != nil {
		if payload, err := json.Marshal(summary); err == nil {
			hc.ws.Broadcast(payload)
		}
	}
	response.Success(c, summary)
}
