package dto

import "time"

// ReservationRecord es la forma cruda de una reserva en la respuesta del
// backend. Las fechas llegan como "2006-01-02" o como timestamps ISO.
type ReservationRecord struct {
	MongoID    string  `json:"_id"`
	ID         string  `json:"id"`
	RoomNumber FlexInt `json:"roomNumber"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Status     string  `json:"status"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Guests     FlexInt `json:"guests"`
	Notes      string  `json:"notes"`
}

// Identifier devuelve el identificador estable del registro
func (r ReservationRecord) Identifier() string {
	if r.MongoID != "" {
		return r.MongoID
	}
	return r.ID
}

// CandidateRequest es el cuerpo del chequeo preventivo de conflictos.
// ExcludeID se usa al editar una reserva para no chocar contra sí misma.
type CandidateRequest struct {
	RoomNumber FlexInt `json:"roomNumber"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	ExcludeID  string  `json:"excludeId"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
}

// ReservationCandidate es el candidato ya validado, listo para el chequeo
type ReservationCandidate struct {
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
	ExcludeID  string
}

// ConflictCheckResponse es la respuesta del chequeo preventivo. El veredicto
// es solo orientativo: el backend repite la verificación al escribir, porque
// el snapshot del cliente puede estar desactualizado.
type ConflictCheckResponse struct {
	Conflict bool   `json:"conflict"`
	Advisory string `json:"advisory"`
}
