package models

import (
	"strings"
	"time"

	"hotel-admin/constants"
	"hotel-admin/utils"
)

// Reservation es el snapshot de una reserva tal como lo publica el backend.
// CheckIn y CheckOut están truncados a granularidad de día; el intervalo de
// ocupación es semiabierto [CheckIn, CheckOut): la habitación queda libre el
// día de salida.
type Reservation struct {
	ID         string    `json:"id"`
	RoomNumber int       `json:"roomNumber"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Status     string    `json:"status"`
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Guests     int       `json:"guests,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// GuestName devuelve el nombre completo del huésped
func (r Reservation) GuestName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// IsCancelled indica si la reserva está cancelada (estado terminal,
// invisible para la resolución de ocupación y para los conflictos)
func (r Reservation) IsCancelled() bool {
	return r.Status == constants.ReservationStatusCancelled
}

// HasValidInterval indica si las fechas forman un intervalo no degenerado.
// Una reserva con fechas ilegibles queda con sus fechas en cero y por lo
// tanto nunca cubre un día ni genera conflicto.
func (r Reservation) HasValidInterval() bool {
	return r.CheckIn.Before(r.CheckOut)
}

// Covers indica si la reserva cubre el día dado: CheckIn <= día < CheckOut
func (r Reservation) Covers(day time.Time) bool {
	if !r.HasValidInterval() {
		return false
	}
	day = utils.TruncateDay(day)
	return !r.CheckIn.After(day) && day.Before(r.CheckOut)
}
