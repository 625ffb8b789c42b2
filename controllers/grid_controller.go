package controllers

import (
	"strconv"
	"time"

	"hotel-admin/constants"
	"hotel-admin/dto"
	"hotel-admin/response"
	"hotel-admin/services"
	"hotel-admin/utils"
	"hotel-admin/validator"

	"github.com/gin-gonic/gin"
)

// GridController sirve las vistas de ocupación: grilla diaria, timeline,
// calendario mensual y disponibilidad
type GridController struct {
	snap *services.SnapshotService
	grid *services.GridService
}

// NewGridController crea una instancia nueva de GridController
func NewGridController(snap *services.SnapshotService, grid *services.GridService) *GridController {
	return &GridController{snap: snap, grid: grid}
}

// GetRoomGrid devuelve la grilla de un día agrupada por piso.
// Query: date=AAAA-MM-DD (por defecto hoy).
func (gc *GridController) GetRoomGrid(c *gin.Context) {
	day := utils.TruncateDay(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := validator.ValidateDateParam(raw)
		if err != nil {
			respondValidation(c, err)
			return
		}
		day = parsed
	}

	snapshot := gc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	response.Success(c, gc.grid.ProjectDay(snapshot, day))
}

// GetTimeline devuelve la matriz habitación × día.
// Query: from=AAAA-MM-DD (por defecto hoy), days=7|15|30 (por defecto 7).
func (gc *GridController) GetTimeline(c *gin.Context) {
	from := utils.TruncateDay(time.Now())
	if raw := c.Query("from"); raw != "" {
		parsed, err := validator.ValidateDateParam(raw)
		if err != nil {
			respondValidation(c, err)
			return
		}
		from = parsed
	}

	days := constants.TimelineViews[0]
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.ValidationError(c, "La cantidad de días debe ser un número")
			return
		}
		days = parsed
	}
	if err := validator.ValidateTimelineDays(days); err != nil {
		respondValidation(c, err)
		return
	}

	snapshot := gc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	response.Success(c, gc.grid.ProjectTimeline(snapshot, utils.DayRange(from, days)))
}

// GetCalendar devuelve la matriz de un mes completo.
// Query: month=MM/AAAA (por defecto el mes actual).
func (gc *GridController) GetCalendar(c *gin.Context) {
	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := validator.ValidateMonthParam(raw)
		if err != nil {
			respondValidation(c, err)
			return
		}
		month = parsed
	}

	snapshot := gc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	response.Success(c, gc.grid.ProjectMonth(snapshot, month))
}

// GetAvailabilityGrid devuelve la disponibilidad de los próximos 30 días
func (gc *GridController) GetAvailabilityGrid(c *gin.Context) {
	snapshot := gc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	rows := gc.grid.ProjectAvailability(snapshot, time.Now(), constants.AvailabilityDays)
	response.Success(c, rows)
}

// GetRoomStatus devuelve la celda resuelta de una habitación para un día.
// Query: number=101&date=AAAA-MM-DD (fecha por defecto hoy).
func (gc *GridController) GetRoomStatus(c *gin.Context) {
	number, err := strconv.Atoi(c.Query("number"))
	if err != nil || number <= 0 {
		response.ValidationError(c, "El número de habitación es obligatorio")
		return
	}

	day := utils.TruncateDay(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := validator.ValidateDateParam(raw)
		if err != nil {
			respondValidation(c, err)
			return
		}
		day = parsed
	}

	snapshot := gc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	room, ok := snapshot.RoomByNumber(number)
	if !ok {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.RoomStatusResponse{
		Number: room.Number,
		Date:   utils.FormatDay(day),
		Cell:   gc.grid.ResolveCell(room, snapshot.Reservations, day),
	})
}
