package services

import (
	"hotel-admin/dto"
	"hotel-admin/models"
)

// FindConflict busca la primera reserva existente que choca con el
// candidato: misma habitación, no cancelada, distinta de ExcludeID (para no
// chocar contra sí misma al editar) y con intervalo solapado.
//
// El resultado es solo orientativo: el snapshot del cliente puede estar
// desactualizado frente a otro editor concurrente, así que el backend repite
// la verificación con autoridad en el momento de escribir.
func FindConflict(candidate dto.ReservationCandidate, reservations []models.Reservation) *models.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if r.RoomNumber != candidate.RoomNumber {
			continue
		}
		if r.IsCancelled() {
			continue
		}
		if candidate.ExcludeID != "" && r.ID == candidate.ExcludeID {
			continue
		}
		if Overlaps(candidate.CheckIn, candidate.CheckOut, r.CheckIn, r.CheckOut) {
			return r
		}
	}
	return nil
}

// HasConflict indica si alguna reserva existente choca con el candidato
func HasConflict(candidate dto.ReservationCandidate, reservations []models.Reservation) bool {
	return FindConflict(candidate, reservations) != nil
}
