package utils

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "fechaPelada", in: "2024-06-01", want: "2024-06-01"},
		{name: "timestampISO", in: "2024-06-01T15:04:05Z", want: "2024-06-01"},
		{name: "timestampConMilisegundos", in: "2024-06-01T15:04:05.000Z", want: "2024-06-01"},
		{name: "vacia", in: "", wantErr: true},
		{name: "otroFormato", in: "01/06/2024", wantErr: true},
		{name: "basura", in: "no-es-fecha", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDay(%q) debería fallar", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q): %v", tt.in, err)
			}
			if FormatDay(got) != tt.want {
				t.Errorf("ParseDay(%q) = %s, want %s", tt.in, FormatDay(got), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Error("el resultado debe quedar a medianoche")
			}
		})
	}
}

func TestTruncateDay(t *testing.T) {
	in := time.Date(2024, 6, 1, 23, 59, 59, 999, time.UTC)
	got := TruncateDay(in)
	if got.Hour() != 0 || got.Day() != 1 || got.Month() != 6 {
		t.Errorf("TruncateDay() = %v", got)
	}
}

func TestDayRange(t *testing.T) {
	start, _ := ParseDay("2024-06-28")
	got := DayRange(start, 5)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	want := []string{"2024-06-28", "2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"}
	for i, w := range want {
		if FormatDay(got[i]) != w {
			t.Errorf("día[%d] = %s, want %s", i, FormatDay(got[i]), w)
		}
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		in   string
		days int
	}{
		{"2024-06-15", 30},
		{"2024-02-10", 29}, // bisiesto
		{"2023-02-10", 28},
		{"2024-12-31", 31},
	}
	for _, tt := range tests {
		ref, _ := ParseDay(tt.in)
		got := MonthDays(ref)
		if len(got) != tt.days {
			t.Errorf("MonthDays(%s) = %d días, want %d", tt.in, len(got), tt.days)
		}
		if got[0].Day() != 1 {
			t.Errorf("MonthDays(%s) debe arrancar el día 1", tt.in)
		}
	}
}
