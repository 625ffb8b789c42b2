package controllers

import (
	"strconv"

	"hotel-admin/constants"
	"hotel-admin/dto"
	appErrors "hotel-admin/errors"
	"hotel-admin/models"
	"hotel-admin/response"
	"hotel-admin/services"
	"hotel-admin/validator"

	"github.com/gin-gonic/gin"
)

// ReservationController sirve el snapshot de reservas y el chequeo
// preventivo de conflictos
type ReservationController struct {
	snap *services.SnapshotService
}

// NewReservationController crea una instancia nueva de ReservationController
func NewReservationController(snap *services.SnapshotService) *ReservationController {
	return &ReservationController{snap: snap}
}

// respondValidation traduce un AppError de validación a la respuesta HTTP
func respondValidation(c *gin.Context, err error) {
	if appErr := appErrors.GetAppError(err); appErr != nil {
		response.ValidationError(c, appErr.Message)
		return
	}
	response.BadRequest(c, err.Error())
}

// GetReservations devuelve el snapshot de reservas, con filtro opcional por
// estado y paginado. Query: estado=, page=, limit=.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	snapshot := rc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	estado := services.NormalizeReservationStatus(c.Query("estado"))
	filtered := make([]models.Reservation, 0, len(snapshot.Reservations))
	for _, r := range snapshot.Reservations {
		if c.Query("estado") != "" && r.Status != estado {
			continue
		}
		filtered = append(filtered, r)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	response.SuccessWithPagination(c, filtered[start:end], page, limit, total)
}

// GetActiveByRoom devuelve las reservas activas (reservado u ocupado) de
// una habitación
func (rc *ReservationController) GetActiveByRoom(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		response.ValidationError(c, "Número de habitación inválido")
		return
	}

	snapshot := rc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	active := make([]models.Reservation, 0)
	for _, r := range snapshot.Reservations {
		if r.RoomNumber != number {
			continue
		}
		if r.Status == constants.ReservationStatusBooked || r.Status == constants.ReservationStatusCheckedIn {
			active = append(active, r)
		}
	}
	response.Success(c, active)
}

// CheckConflict es el chequeo preventivo de una reserva nueva o editada
// contra el snapshot vigente. Un 200 acá no implica seguridad: el backend
// repite la verificación con autoridad al escribir.
func (rc *ReservationController) CheckConflict(c *gin.Context) {
	var req dto.CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	candidate, err := validator.ValidateCandidate(&req)
	if err != nil {
		respondValidation(c, err)
		return
	}

	snapshot := rc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	if conflicting := services.FindConflict(*candidate, snapshot.Reservations); conflicting != nil {
		response.Conflict(c, conflicting)
		return
	}

	response.Success(c, dto.ConflictCheckResponse{
		Conflict: false,
		Advisory: "Sin conflicto en el snapshot actual; el backend valida al confirmar",
	})
}

// SearchReservations busca reservas por nombre de huésped. Query: q=.
func (rc *ReservationController) SearchReservations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.ValidationError(c, "El parámetro q es obligatorio")
		return
	}

	snapshot := rc.snap.Snapshot()
	if snapshot.Empty() {
		response.ServiceUnavailable(c, "Todavía no hay datos del backend")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}
	results := services.SearchReservations(snapshot.Reservations, query, limit)
	response.Success(c, results)
}
