package builders

import (
	"hotel-admin/constants"
	"hotel-admin/models"
	"hotel-admin/utils"
)

// ReservationBuilder arma una reserva paso a paso
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder crea una instancia nueva de ReservationBuilder.
// La reserva arranca como reservada, que es el estado inicial del ciclo.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{
			Status: constants.ReservationStatusBooked,
			Guests: 1,
		},
	}
}

// WithID asigna el identificador
func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.reservation.ID = id
	return b
}

// WithRoom asigna el número de habitación
func (b *ReservationBuilder) WithRoom(number int) *ReservationBuilder {
	b.reservation.RoomNumber = number
	return b
}

// WithDates asigna el intervalo [checkIn, checkOut) a partir de fechas
// "AAAA-MM-DD". Las fechas ilegibles quedan en cero.
func (b *ReservationBuilder) WithDates(checkIn, checkOut string) *ReservationBuilder {
	if t, err := utils.ParseDay(checkIn); err == nil {
		b.reservation.CheckIn = t
	}
	if t, err := utils.ParseDay(checkOut); err == nil {
		b.reservation.CheckOut = t
	}
	return b
}

// WithStatus asigna el estado de la reserva
func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// WithGuest asigna el huésped
func (b *ReservationBuilder) WithGuest(firstName, lastName string) *ReservationBuilder {
	b.reservation.FirstName = firstName
	b.reservation.LastName = lastName
	return b
}

// WithContact asigna los datos de contacto
func (b *ReservationBuilder) WithContact(phone, email string) *ReservationBuilder {
	b.reservation.Phone = phone
	b.reservation.Email = email
	return b
}

// Build devuelve la reserva armada
func (b *ReservationBuilder) Build() models.Reservation {
	return *b.reservation
}
