package dto

// Cell es el estado resuelto de una habitación para un día. Cuando el
// estado viene de una reserva (ocupado o reservado) se adjuntan los datos
// del huésped para tooltips y etiquetas.
type Cell struct {
	Status   string `json:"status"`
	Guest    string `json:"guest,omitempty"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Tooltip  string `json:"tooltip,omitempty"`
}

// TimelineRow es una fila habitación × días del timeline
type TimelineRow struct {
	ID     string          `json:"id"`
	Number int             `json:"number"`
	Floor  int             `json:"floor"`
	Type   string          `json:"type,omitempty"`
	Cells  map[string]Cell `json:"cells"`
}

// TimelineResponse es la matriz completa habitación × día
type TimelineResponse struct {
	Dates []string      `json:"dates"`
	Rooms []TimelineRow `json:"rooms"`
}

// GridResponse es la grilla de un día agrupada por piso
type GridResponse struct {
	Date   string               `json:"date"`
	Floors []FloorGroupResponse `json:"floors"`
}

// AvailabilityRow es la disponibilidad de una habitación para los
// próximos días, indexada por fecha
type AvailabilityRow struct {
	Number       int               `json:"number"`
	Availability map[string]string `json:"availability"`
}

// OccupancySummary es el resumen que se difunde por websocket en cada
// refresco y que expone el endpoint de salud
type OccupancySummary struct {
	Date            string         `json:"date"`
	Counts          map[string]int `json:"counts"`
	TotalRooms      int            `json:"totalRooms"`
	MissingRoomRefs int            `json:"missingRoomRefs,omitempty"`
	RefreshedAt     string         `json:"refreshedAt"`
}

// HealthResponse reporta el estado del upstream y la frescura del snapshot
type HealthResponse struct {
	UpstreamOK      bool   `json:"upstreamOk"`
	SnapshotAge     string `json:"snapshotAge"`
	Rooms           int    `json:"rooms"`
	Reservations    int    `json:"reservations"`
	MissingRoomRefs int    `json:"missingRoomRefs"`
}
