package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"hotel-admin/constants"
	"hotel-admin/dto"
	"hotel-admin/models"
	"hotel-admin/services/logger"
	"hotel-admin/utils"

	"github.com/redis/go-redis/v9"
)

const (
	roomsCacheKey        = "snapshot:rooms"
	reservationsCacheKey = "snapshot:reservations"
)

// SnapshotServiceOptions son las dependencias del SnapshotService
type SnapshotServiceOptions struct {
	BaseURL string
	Client  *http.Client
	Redis   *redis.Client
	TTL     time.Duration
	Logger  logger.Logger
}

// SnapshotService mantiene el último snapshot de habitaciones y reservas.
// Los lectores reciben el snapshot por valor; el refresco lo reemplaza
// entero, nunca lo muta.
type SnapshotService struct {
	mu       sync.RWMutex
	snapshot models.Snapshot

	baseURL string
	client  *http.Client
	rdb     *redis.Client
	ttl     time.Duration
	log     logger.Logger

	upstreamOK bool
}

// NewSnapshotService crea una instancia nueva de SnapshotService
func NewSnapshotService(opts SnapshotServiceOptions) *SnapshotService {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &SnapshotService{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		client:  client,
		rdb:     opts.Redis,
		ttl:     ttl,
		log:     log,
	}
}

// Snapshot devuelve el snapshot vigente
func (s *SnapshotService) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// UpstreamOK indica si el último refresco contra el backend funcionó
func (s *SnapshotService) UpstreamOK() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.upstreamOK
}

// Refresh consulta habitaciones y reservas al backend y reemplaza el
// snapshot. Si el backend no responde intenta rehidratar desde redis para
// seguir sirviendo el último dato bueno.
func (s *SnapshotService) Refresh(ctx context.Context) error {
	var roomRecords []dto.RoomRecord
	var reservationRecords []dto.ReservationRecord

	errRooms := s.fetchJSON(ctx, s.baseURL+"/rooms", &roomRecords)
	errReservations := s.fetchJSON(ctx, s.baseURL+"/reservations", &reservationRecords)

	if errRooms != nil || errReservations != nil {
		s.setUpstreamOK(false)
		if errRooms != nil {
			s.log.Error("no se pudieron obtener habitaciones del backend: %v", errRooms)
		}
		if errReservations != nil {
			s.log.Error("no se pudieron obtener reservas del backend: %v", errReservations)
		}
		if err := s.rehydrateFromCache(ctx); err != nil {
			return fmt.Errorf("backend caído y sin cache utilizable: %w", err)
		}
		return nil
	}

	rooms := make([]models.Room, 0, len(roomRecords))
	for _, rec := range roomRecords {
		rooms = append(rooms, s.normalizeRoomRecord(rec))
	}
	reservations := make([]models.Reservation, 0, len(reservationRecords))
	for _, rec := range reservationRecords {
		reservations = append(reservations, s.normalizeReservationRecord(rec))
	}

	snapshot := buildSnapshot(rooms, reservations, time.Now())
	if snapshot.MissingRoomRefs > 0 {
		s.log.Warn("%d reservas apuntan a habitaciones ausentes del snapshot", snapshot.MissingRoomRefs)
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.upstreamOK = true
	s.mu.Unlock()

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, roomsCacheKey, rooms, s.ttl); err != nil {
			s.log.Warn("no se pudo guardar el snapshot de habitaciones en redis: %v", err)
		}
		if err := SetToRedis(ctx, s.rdb, reservationsCacheKey, reservations, s.ttl); err != nil {
			s.log.Warn("no se pudo guardar el snapshot de reservas en redis: %v", err)
		}
	}
	return nil
}

// rehydrateFromCache repone el snapshot desde redis cuando el proceso
// arranca con el backend caído. Si ya hay un snapshot en memoria se lo
// conserva: siempre es al menos tan fresco como el de redis.
func (s *SnapshotService) rehydrateFromCache(ctx context.Context) error {
	s.mu.RLock()
	empty := s.snapshot.Empty()
	s.mu.RUnlock()
	if !empty {
		return nil
	}
	if s.rdb == nil {
		return fmt.Errorf("sin redis configurado")
	}

	var rooms []models.Room
	var reservations []models.Reservation
	if err := GetFromRedis(ctx, s.rdb, roomsCacheKey, &rooms); err != nil {
		return err
	}
	if err := GetFromRedis(ctx, s.rdb, reservationsCacheKey, &reservations); err != nil {
		return err
	}
	if len(rooms) == 0 {
		return fmt.Errorf("cache vacío")
	}

	s.mu.Lock()
	s.snapshot = buildSnapshot(rooms, reservations, time.Now())
	s.mu.Unlock()
	s.log.Info("snapshot rehidratado desde redis: %d habitaciones, %d reservas", len(rooms), len(reservations))
	return nil
}

func (s *SnapshotService) setUpstreamOK(ok bool) {
	s.mu.Lock()
	s.upstreamOK = ok
	s.mu.Unlock()
}

func (s *SnapshotService) fetchJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("el backend respondió %d para %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

func buildSnapshot(rooms []models.Room, reservations []models.Reservation, now time.Time) models.Snapshot {
	known := make(map[int]bool, len(rooms))
	for _, room := range rooms {
		known[room.Number] = true
	}
	missing := 0
	for _, r := range reservations {
		if !known[r.RoomNumber] {
			missing++
		}
	}
	return models.Snapshot{
		Rooms:           rooms,
		Reservations:    reservations,
		FetchedAt:       now,
		MissingRoomRefs: missing,
	}
}

// normalizeRoomRecord convierte un registro crudo del backend en el modelo
// canónico, unificando el vocabulario de estados. Un estado no contemplado
// se deja pasar tal cual, pero queda registrado.
func (s *SnapshotService) normalizeRoomRecord(rec dto.RoomRecord) models.Room {
	room := models.Room{
		ID:     rec.Identifier(),
		Number: rec.Number.Int(),
		Floor:  rec.Floor.Int(),
		Type:   rec.Type,
		Status: NormalizeRoomStatus(rec.Status),
	}
	if err := room.ValidateStatus(); err != nil {
		s.log.Warn("habitación %d con estado fuera del vocabulario: %v", room.Number, err)
	}
	return room
}

// normalizeReservationRecord convierte un registro crudo de reserva. Las
// fechas ilegibles quedan en cero: la reserva no cubre ningún día ni genera
// conflictos, pero un registro roto no voltea el render completo.
func (s *SnapshotService) normalizeReservationRecord(rec dto.ReservationRecord) models.Reservation {
	r := models.Reservation{
		ID:         rec.Identifier(),
		RoomNumber: rec.RoomNumber.Int(),
		Status:     NormalizeReservationStatus(rec.Status),
		FirstName:  rec.FirstName,
		LastName:   rec.LastName,
		Phone:      rec.Phone,
		Email:      rec.Email,
		Guests:     rec.Guests.Int(),
		Notes:      rec.Notes,
	}
	checkIn, errIn := utils.ParseDay(rec.CheckIn)
	checkOut, errOut := utils.ParseDay(rec.CheckOut)
	if errIn != nil || errOut != nil {
		s.log.Warn("reserva %s con fechas ilegibles (%q, %q), se la ignora para ocupación",
			r.ID, rec.CheckIn, rec.CheckOut)
		return r
	}
	r.CheckIn = checkIn
	r.CheckOut = checkOut
	return r
}

// NormalizeRoomStatus unifica las variantes de vocabulario que arrastra el
// backend ("libre", "fuera de servicio") en la forma canónica
func NormalizeRoomStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "disponible", "libre":
		return constants.RoomStatusAvailable
	case "limpieza":
		return constants.RoomStatusCleaning
	case "mantenimiento":
		return constants.RoomStatusMaintenance
	case "fuera_de_servicio", "fuera de servicio":
		return constants.RoomStatusOutOfService
	}
	return strings.ToLower(strings.TrimSpace(status))
}

// NormalizeReservationStatus colapsa la deriva de género del vocabulario
// histórico ("ocupada"/"ocupado") en una sola forma
func NormalizeReservationStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "reservado", "reservada":
		return constants.ReservationStatusBooked
	case "ocupado", "ocupada":
		return constants.ReservationStatusCheckedIn
	case "completado", "completada":
		return constants.ReservationStatusCompleted
	case "cancelado", "cancelada":
		return constants.ReservationStatusCancelled
	}
	return strings.ToLower(strings.TrimSpace(status))
}
