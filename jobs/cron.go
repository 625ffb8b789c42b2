package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hotel-admin/dto"
	"hotel-admin/models"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// SnapshotRefresher define la interfaz del refresco periódico de datos
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
	Snapshot() models.Snapshot
}

// OccupancySummarizer define el armado del resumen que se difunde
type OccupancySummarizer interface {
	Summary(snapshot models.Snapshot, day time.Time) dto.OccupancySummary
}

var (
	snapshotRefresher   SnapshotRefresher
	occupancySummarizer OccupancySummarizer
)

// SetSnapshotRefresher establece la implementación de SnapshotRefresher
func SetSnapshotRefresher(r SnapshotRefresher) {
	snapshotRefresher = r
}

// SetOccupancySummarizer establece la implementación de OccupancySummarizer
func SetOccupancySummarizer(s OccupancySummarizer) {
	occupancySummarizer = s
}

// InitCronJobs registra el refresco periódico del snapshot. En cada tick se
// vuelve a consultar el backend y se difunde el resumen de ocupación a los
// clientes conectados por websocket.
func InitCronJobs(c *cron.Cron, m *melody.Melody, spec string) error {
	_, err := c.AddFunc(spec, func() {
		if snapshotRefresher == nil {
			log.Printf("Error: SnapshotRefresher sin configurar")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := snapshotRefresher.Refresh(ctx); err != nil {
			log.Printf("Error al refrescar el snapshot: %v", err)
			return
		}

		if m == nil || occupancySummarizer == nil {
			return
		}
		summary := occupancySummarizer.Summary(snapshotRefresher.Snapshot(), time.Now())
		payload, err := json.Marshal(summary)
		if err != nil {
			log.Printf("Error al serializar el resumen de ocupación: %v", err)
			return
		}
		if err := m.Broadcast(payload); err != nil {
			log.Printf("Error al difundir el resumen de ocupación: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs inicializados")
	return nil
}
