package models

import "time"

// Snapshot es la foto inmutable de habitaciones y reservas sobre la que
// trabajan todas las proyecciones. Cada refresco reemplaza el snapshot
// completo; ningún cómputo ve un estado a medio actualizar.
type Snapshot struct {
	Rooms        []Room
	Reservations []Reservation
	FetchedAt    time.Time

	// MissingRoomRefs cuenta reservas que apuntan a habitaciones ausentes
	// del snapshot de habitaciones (los dos endpoints se consultan por
	// separado y pueden estar momentáneamente desfasados)
	MissingRoomRefs int
}

// Empty indica si todavía no se cargó ningún dato
func (s Snapshot) Empty() bool {
	return s.FetchedAt.IsZero()
}

// Age devuelve la antigüedad del snapshot
func (s Snapshot) Age(now time.Time) time.Duration {
	if s.Empty() {
		return 0
	}
	return now.Sub(s.FetchedAt)
}

// RoomByNumber busca una habitación por número de puerta
func (s Snapshot) RoomByNumber(number int) (Room, bool) {
	for _, room := range s.Rooms {
		if room.Number == number {
			return room, true
		}
	}
	return Room{}, false
}
