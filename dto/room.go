package dto

// RoomRecord es la forma cruda de una habitación en la respuesta del
// backend (identificador mongo en "_id", number a veces como string)
type RoomRecord struct {
	MongoID string  `json:"_id"`
	ID      string  `json:"id"`
	Number  FlexInt `json:"number"`
	Floor   FlexInt `json:"floor"`
	Type    string  `json:"type"`
	Status  string  `json:"status"`
}

// Identifier devuelve el identificador estable del registro
func (r RoomRecord) Identifier() string {
	if r.MongoID != "" {
		return r.MongoID
	}
	return r.ID
}

// RoomCellResponse es una habitación resuelta para un día dentro de la grilla
type RoomCellResponse struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Type   string `json:"type,omitempty"`
	Cell   Cell   `json:"cell"`
}

// FloorGroupResponse agrupa las habitaciones de un piso
type FloorGroupResponse struct {
	Floor int                `json:"floor"`
	Rooms []RoomCellResponse `json:"rooms"`
}

// RoomStatusResponse es la respuesta de estado de una sola habitación
type RoomStatusResponse struct {
	Number int    `json:"number"`
	Date   string `json:"date"`
	Cell   Cell   `json:"cell"`
}
