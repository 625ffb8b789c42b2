package validator

import (
	"testing"

	"hotel-admin/dto"
	"hotel-admin/errors"
)

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CandidateRequest
		wantCode errors.ErrorCode
	}{
		{
			name: "valido",
			req:  dto.CandidateRequest{RoomNumber: 101, CheckIn: "2024-06-01", CheckOut: "2024-06-05"},
		},
		{
			name: "validoConTimestampISO",
			req:  dto.CandidateRequest{RoomNumber: 101, CheckIn: "2024-06-01T14:00:00Z", CheckOut: "2024-06-05T10:00:00Z"},
		},
		{
			name:     "sinHabitacion",
			req:      dto.CandidateRequest{CheckIn: "2024-06-01", CheckOut: "2024-06-05"},
			wantCode: errors.ErrCodeRequiredField,
		},
		{
			name:     "sinFechaDeEntrada",
			req:      dto.CandidateRequest{RoomNumber: 101, CheckOut: "2024-06-05"},
			wantCode: errors.ErrCodeRequiredField,
		},
		{
			name:     "fechaIlegible",
			req:      dto.CandidateRequest{RoomNumber: 101, CheckIn: "01/06/2024", CheckOut: "2024-06-05"},
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			// entrada >= salida se rechaza antes de chequear conflictos
			name:     "entradaDespuesDeSalida",
			req:      dto.CandidateRequest{RoomNumber: 101, CheckIn: "2024-06-05", CheckOut: "2024-06-01"},
			wantCode: errors.ErrCodeInvalidDateRange,
		},
		{
			name:     "entradaIgualASalida",
			req:      dto.CandidateRequest{RoomNumber: 101, CheckIn: "2024-06-05", CheckOut: "2024-06-05"},
			wantCode: errors.ErrCodeInvalidDateRange,
		},
		{
			name:     "emailInvalido",
			req:      dto.CandidateRequest{RoomNumber: 101, CheckIn: "2024-06-01", CheckOut: "2024-06-05", Email: "no-es-email"},
			wantCode: errors.ErrCodeInvalidEmail,
		},
		{
			name:     "telefonoInvalido",
			req:      dto.CandidateRequest{RoomNumber: 101, CheckIn: "2024-06-01", CheckOut: "2024-06-05", Phone: "abc"},
			wantCode: errors.ErrCodeInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, err := ValidateCandidate(&tt.req)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateCandidate(): %v", err)
				}
				if candidate.RoomNumber != tt.req.RoomNumber.Int() {
					t.Errorf("RoomNumber = %d", candidate.RoomNumber)
				}
				if !candidate.CheckIn.Before(candidate.CheckOut) {
					t.Error("el candidato debe quedar con intervalo válido")
				}
				return
			}
			if err == nil {
				t.Fatal("se esperaba error de validación")
			}
			appErr := errors.GetAppError(err)
			if appErr == nil {
				t.Fatalf("se esperaba AppError, llegó %T", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestValidateCandidateTruncatesToDay(t *testing.T) {
	req := dto.CandidateRequest{
		RoomNumber: 101,
		CheckIn:    "2024-06-01T23:59:00Z",
		CheckOut:   "2024-06-02T00:01:00Z",
	}
	candidate, err := ValidateCandidate(&req)
	if err != nil {
		t.Fatalf("ValidateCandidate(): %v", err)
	}
	if candidate.CheckIn.Hour() != 0 || candidate.CheckOut.Hour() != 0 {
		t.Error("las fechas del candidato deben quedar a granularidad de día")
	}
}

func TestValidateDateParam(t *testing.T) {
	if _, err := ValidateDateParam(""); errors.GetAppError(err) == nil {
		t.Error("la fecha vacía debe rechazarse")
	}
	if _, err := ValidateDateParam("2024-13-40"); errors.GetAppError(err) == nil {
		t.Error("la fecha imposible debe rechazarse")
	}
	day, err := ValidateDateParam("2024-06-01")
	if err != nil {
		t.Fatalf("ValidateDateParam(): %v", err)
	}
	if day.Day() != 1 {
		t.Errorf("Day = %d", day.Day())
	}
}

func TestValidateMonthParam(t *testing.T) {
	month, err := ValidateMonthParam("06/2024")
	if err != nil {
		t.Fatalf("ValidateMonthParam(): %v", err)
	}
	if month.Month() != 6 || month.Year() != 2024 {
		t.Errorf("mes = %v", month)
	}
	if _, err := ValidateMonthParam("2024-06"); err == nil {
		t.Error("el formato AAAA-MM debe rechazarse, el parámetro es MM/AAAA")
	}
}

func TestValidateTimelineDays(t *testing.T) {
	for _, ok := range []int{7, 15, 30} {
		if err := ValidateTimelineDays(ok); err != nil {
			t.Errorf("ValidateTimelineDays(%d): %v", ok, err)
		}
	}
	for _, bad := range []int{0, -1, 10, 365} {
		if err := ValidateTimelineDays(bad); err == nil {
			t.Errorf("ValidateTimelineDays(%d) debería fallar", bad)
		}
	}
}
