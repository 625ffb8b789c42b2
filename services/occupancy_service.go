package services

import (
	"time"

	"hotel-admin/constants"
	"hotel-admin/models"
	"hotel-admin/utils"
)

// Overlaps indica si dos intervalos semiabiertos [startA, endA) y
// [startB, endB) se intersecan. Que el checkout de una reserva coincida con
// el check-in de otra NO es solapamiento: es el recambio del mismo día.
// Los intervalos degenerados (start >= end) nunca solapan.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	if !startA.Before(endA) || !startB.Before(endB) {
		return false
	}
	return startA.Before(endB) && startB.Before(endA)
}

// FindCoveringReservation busca la reserva no cancelada que cubre el día
// dado para la habitación dada: CheckIn <= día < CheckOut, a granularidad
// de día. Si más de una reserva cubre el día (corrupción de datos o un
// conflicto que se escapó), devuelve la primera en orden de iteración.
func FindCoveringReservation(roomNumber int, reservations []models.Reservation, day time.Time) *models.Reservation {
	day = utils.TruncateDay(day)
	for i := range reservations {
		r := &reservations[i]
		if r.RoomNumber != roomNumber || r.IsCancelled() {
			continue
		}
		if r.Covers(day) {
			return r
		}
	}
	return nil
}

// CountCoveringReservations cuenta cuántas reservas no canceladas cubren el
// día para la habitación. Un resultado mayor a uno es una condición de
// calidad de datos que el llamador debe registrar, no ocultar.
func CountCoveringReservations(roomNumber int, reservations []models.Reservation, day time.Time) int {
	day = utils.TruncateDay(day)
	count := 0
	for i := range reservations {
		r := &reservations[i]
		if r.RoomNumber != roomNumber || r.IsCancelled() {
			continue
		}
		if r.Covers(day) {
			count++
		}
	}
	return count
}

// ResolveStatus deriva el estado visible de una habitación para un día.
// Precedencia fija, gana la primera regla que aplica:
//  1. mantenimiento, limpieza y fuera_de_servicio son estados físicos de la
//     habitación y pisan cualquier reserva
//  2. una reserva que cubre el día aporta su estado (ocupado o reservado)
//  3. cualquier otro estado intrínseco no vacío se pasa tal cual
//  4. disponible
func ResolveStatus(room models.Room, reservations []models.Reservation, day time.Time) string {
	switch room.Status {
	case constants.RoomStatusMaintenance:
		return constants.RoomStatusMaintenance
	case constants.RoomStatusCleaning:
		return constants.RoomStatusCleaning
	case constants.RoomStatusOutOfService:
		return constants.RoomStatusOutOfService
	}

	if r := FindCoveringReservation(room.Number, reservations, day); r != nil {
		switch r.Status {
		case constants.ReservationStatusCheckedIn:
			return constants.ReservationStatusCheckedIn
		case constants.ReservationStatusBooked:
			return constants.ReservationStatusBooked
		}
	}

	if room.Status != "" && room.Status != constants.RoomStatusAvailable {
		return room.Status
	}
	return constants.RoomStatusAvailable
}
