package services

import (
	"fmt"
	"sort"
	"time"

	"hotel-admin/constants"
	"hotel-admin/dto"
	"hotel-admin/models"
	"hotel-admin/services/logger"
	"hotel-admin/utils"
)

// GridService proyecta el snapshot sobre grillas, timelines y calendarios.
// Todas las proyecciones son cómputos puros sobre el snapshot recibido.
type GridService struct {
	log logger.Logger
}

// NewGridService crea una instancia nueva de GridService
func NewGridService(log logger.Logger) *GridService {
	return &GridService{log: log}
}

// SortRooms devuelve una copia ordenada por piso ascendente y, dentro del
// piso, por número ascendente. El orden es uno solo para todas las vistas.
func SortRooms(rooms []models.Room) []models.Room {
	sorted := make([]models.Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FloorNumber() != sorted[j].FloorNumber() {
			return sorted[i].FloorNumber() < sorted[j].FloorNumber()
		}
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}

// ResolveCell calcula la celda resuelta de una habitación para un día,
// con los datos del huésped cuando el estado proviene de una reserva
func (g *GridService) ResolveCell(room models.Room, reservations []models.Reservation, day time.Time) dto.Cell {
	status := ResolveStatus(room, reservations, day)
	cell := dto.Cell{Status: status}

	if status == constants.ReservationStatusCheckedIn || status == constants.ReservationStatusBooked {
		if r := FindCoveringReservation(room.Number, reservations, day); r != nil {
			cell.Guest = r.GuestName()
			cell.CheckIn = utils.FormatDay(r.CheckIn)
			cell.CheckOut = utils.FormatDay(r.CheckOut)
			cell.Tooltip = fmt.Sprintf("Habitación %d\n%s\n%s\n%s a %s",
				room.Number, constants.StatusLabel(status), cell.Guest, cell.CheckIn, cell.CheckOut)
		}
		if g.log != nil {
			if n := CountCoveringReservations(room.Number, reservations, day); n > 1 {
				g.log.Warn("cobertura ambigua: %d reservas activas cubren la habitación %d el %s",
					n, room.Number, utils.FormatDay(day))
			}
		}
	}

	if cell.Tooltip == "" {
		cell.Tooltip = fmt.Sprintf("Habitación %d\n%s\n%s",
			room.Number, constants.StatusLabel(status), utils.FormatDay(day))
	}
	return cell
}

// ProjectDay arma la grilla de un día agrupada por piso
func (g *GridService) ProjectDay(snapshot models.Snapshot, day time.Time) dto.GridResponse {
	day = utils.TruncateDay(day)
	resp := dto.GridResponse{Date: utils.FormatDay(day)}

	var current *dto.FloorGroupResponse
	for _, room := range SortRooms(snapshot.Rooms) {
		floor := room.FloorNumber()
		if current == nil || current.Floor != floor {
			resp.Floors = append(resp.Floors, dto.FloorGroupResponse{Floor: floor})
			current = &resp.Floors[len(resp.Floors)-1]
		}
		current.Rooms = append(current.Rooms, dto.RoomCellResponse{
			ID:     room.ID,
			Number: room.Number,
			Type:   room.Type,
			Cell:   g.ResolveCell(room, snapshot.Reservations, day),
		})
	}
	return resp
}

// ProjectTimeline arma la matriz habitación × día para la secuencia de
// fechas dada. Cómputo O(habitaciones × días), sin E/S.
func (g *GridService) ProjectTimeline(snapshot models.Snapshot, dates []time.Time) dto.TimelineResponse {
	resp := dto.TimelineResponse{
		Dates: make([]string, 0, len(dates)),
		Rooms: make([]dto.TimelineRow, 0, len(snapshot.Rooms)),
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, utils.FormatDay(d))
	}

	for _, room := range SortRooms(snapshot.Rooms) {
		row := dto.TimelineRow{
			ID:     room.ID,
			Number: room.Number,
			Floor:  room.FloorNumber(),
			Type:   room.Type,
			Cells:  make(map[string]dto.Cell, len(dates)),
		}
		for _, d := range dates {
			row.Cells[utils.FormatDay(d)] = g.ResolveCell(room, snapshot.Reservations, d)
		}
		resp.Rooms = append(resp.Rooms, row)
	}
	return resp
}

// ProjectMonth arma la matriz de todo el mes al que pertenece la fecha dada
func (g *GridService) ProjectMonth(snapshot models.Snapshot, month time.Time) dto.TimelineResponse {
	return g.ProjectTimeline(snapshot, utils.MonthDays(month))
}

// ProjectAvailability arma el mapa de disponibilidad por habitación para
// los próximos días a partir de hoy
func (g *GridService) ProjectAvailability(snapshot models.Snapshot, today time.Time, days int) []dto.AvailabilityRow {
	dates := utils.DayRange(today, days)
	rows := make([]dto.AvailabilityRow, 0, len(snapshot.Rooms))
	for _, room := range SortRooms(snapshot.Rooms) {
		row := dto.AvailabilityRow{
			Number:       room.Number,
			Availability: make(map[string]string, len(dates)),
		}
		for _, d := range dates {
			row.Availability[utils.FormatDay(d)] = ResolveStatus(room, snapshot.Reservations, d)
		}
		rows = append(rows, row)
	}
	return rows
}

// Summary cuenta las habitaciones por estado resuelto para un día. Es el
// payload que se difunde por websocket después de cada refresco.
func (g *GridService) Summary(snapshot models.Snapshot, day time.Time) dto.OccupancySummary {
	day = utils.TruncateDay(day)
	summary := dto.OccupancySummary{
		Date:            utils.FormatDay(day),
		Counts:          make(map[string]int),
		TotalRooms:      len(snapshot.Rooms),
		MissingRoomRefs: snapshot.MissingRoomRefs,
	}
	if !snapshot.Empty() {
		summary.RefreshedAt = snapshot.FetchedAt.UTC().Format(time.RFC3339)
	}
	for _, room := range snapshot.Rooms {
		summary.Counts[ResolveStatus(room, snapshot.Reservations, day)]++
	}
	return summary
}
