package constants

// Estado intrínseco de habitación
const (
	RoomStatusAvailable    = "disponible"
	RoomStatusCleaning     = "limpieza"
	RoomStatusMaintenance  = "mantenimiento"
	RoomStatusOutOfService = "fuera_de_servicio"
)

// Estado de reserva
const (
	ReservationStatusBooked    = "reservado"
	ReservationStatusCheckedIn = "ocupado"
	ReservationStatusCompleted = "completado"
	ReservationStatusCancelled = "cancelado"
)

// Etiquetas visibles de cada estado resuelto
var StatusLabels = map[string]string{
	RoomStatusAvailable:        "Disponible",
	RoomStatusCleaning:         "Limpieza",
	RoomStatusMaintenance:      "Mantenimiento",
	RoomStatusOutOfService:     "Fuera de servicio",
	ReservationStatusBooked:    "Reservado",
	ReservationStatusCheckedIn: "Ocupado",
}

// StatusLabel devuelve la etiqueta visible de un estado, o el estado crudo
// si no tiene etiqueta conocida
func StatusLabel(status string) string {
	if label, ok := StatusLabels[status]; ok {
		return label
	}
	return status
}

// Vistas permitidas del timeline, en noches
var TimelineViews = []int{7, 15, 30}

// Días que cubre la grilla de disponibilidad
const AvailabilityDays = 30
