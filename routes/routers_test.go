package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-admin/services"
	"hotel-admin/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id": "a1", "number": 101, "status": "disponible"},
			{"_id": "a2", "number": 102, "status": "limpieza"}
		]`))
	})
	mux.HandleFunc("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"_id": "r1", "roomNumber": 101, "checkIn": "2024-06-01", "checkOut": "2024-06-03", "status": "ocupado", "firstName": "Ana", "lastName": "García"}
		]`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	log := logger.NewDefaultLogger(logger.ErrorLevel)
	snap := services.NewSnapshotService(services.SnapshotServiceOptions{
		BaseURL: upstream.URL + "/api",
		Logger:  log,
	})
	if err := snap.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh(): %v", err)
	}

	router := gin.New()
	SetupRoutes(router, snap, services.NewGridService(log), melody.New())
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetRooms(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodGet, "/api/v1/rooms", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"number":101`) {
		t.Errorf("body sin la habitación 101: %s", w.Body.String())
	}
}

func TestGetTimeline(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/timeline?from=2024-06-01&days=7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Code int `json:"code"`
		Data struct {
			Dates []string `json:"dates"`
			Rooms []struct {
				Number int                          `json:"number"`
				Cells  map[string]map[string]string `json:"cells"`
			} `json:"rooms"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("respuesta ilegible: %v", err)
	}
	if len(envelope.Data.Dates) != 7 {
		t.Errorf("dates = %d, want 7", len(envelope.Data.Dates))
	}
	if got := envelope.Data.Rooms[0].Cells["2024-06-01"]["status"]; got != "ocupado" {
		t.Errorf("101 el 1/6 = %q, want ocupado", got)
	}
	if got := envelope.Data.Rooms[1].Cells["2024-06-01"]["status"]; got != "limpieza" {
		t.Errorf("102 el 1/6 = %q, want limpieza", got)
	}
}

func TestGetTimelineRejectsBadViews(t *testing.T) {
	router := testRouter(t)
	for _, path := range []string{
		"/api/v1/timeline?days=10",
		"/api/v1/timeline?from=01-06-2024",
		"/api/v1/grid?date=basura",
	} {
		if w := doRequest(t, router, http.MethodGet, path, ""); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestCheckConflict(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "conflictoParcial",
			body:     `{"roomNumber": 101, "checkIn": "2024-06-02", "checkOut": "2024-06-04"}`,
			wantCode: http.StatusConflict,
		},
		{
			name:     "contiguoPasa",
			body:     `{"roomNumber": 101, "checkIn": "2024-06-03", "checkOut": "2024-06-05"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "edicionSeExcluye",
			body:     `{"roomNumber": 101, "checkIn": "2024-06-01", "checkOut": "2024-06-03", "excludeId": "r1"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "rangoInvalido",
			body:     `{"roomNumber": 101, "checkIn": "2024-06-05", "checkOut": "2024-06-01"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "numeroComoString",
			body:     `{"roomNumber": "101", "checkIn": "2024-06-02", "checkOut": "2024-06-04"}`,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/reservations/check", tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestGetRoomStatus(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodGet, "/api/v1/roomStatus?number=101&date=2024-06-02", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"status":"ocupado"`) || !strings.Contains(body, "Ana García") {
		t.Errorf("body = %s", body)
	}

	if w := doRequest(t, testRouter(t), http.MethodGet, "/api/v1/roomStatus?number=999", ""); w.Code != http.StatusNotFound {
		t.Errorf("habitación inexistente: status = %d, want 404", w.Code)
	}
}

func TestHealth(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodGet, "/api/v1/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"upstreamOk":true`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSearch(t *testing.T) {
	w := doRequest(t, testRouter(t), http.MethodGet, "/api/v1/search?q=garcia", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"id":"r1"`) {
		t.Errorf("la búsqueda sin acentos debe encontrar a García: %s", w.Body.String())
	}
}
