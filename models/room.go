package models

import (
	"fmt"

	"hotel-admin/constants"
)

// Room es el snapshot de una habitación tal como lo publica el backend
type Room struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Floor  int    `json:"floor,omitempty"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status"`
}

// FloorNumber devuelve el piso explícito, o lo deriva de la centena del número
func (r Room) FloorNumber() int {
	if r.Floor > 0 {
		return r.Floor
	}
	return r.Number / 100
}

// ValidateStatus verifica que el estado intrínseco sea uno de los conocidos
func (r *Room) ValidateStatus() error {
	switch r.Status {
	case "", constants.RoomStatusAvailable, constants.RoomStatusCleaning,
		constants.RoomStatusMaintenance, constants.RoomStatusOutOfService:
		return nil
	}
	return fmt.Errorf("estado desconocido: %q", r.Status)
}
