package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "numero", in: `101`, want: 101},
		{name: "string", in: `"101"`, want: 101},
		{name: "null", in: `null`, want: 0},
		{name: "stringVacio", in: `""`, want: 0},
		{name: "stringNoNumerico", in: `"piso"`, wantErr: true},
		{name: "decimal", in: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.in), &f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) debería fallar", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if f.Int() != tt.want {
				t.Errorf("FlexInt = %d, want %d", f.Int(), tt.want)
			}
		})
	}
}

func TestRecordIdentifiers(t *testing.T) {
	room := RoomRecord{MongoID: "abc", ID: "otro"}
	if room.Identifier() != "abc" {
		t.Errorf("el _id de mongo tiene prioridad, se obtuvo %s", room.Identifier())
	}
	room = RoomRecord{ID: "otro"}
	if room.Identifier() != "otro" {
		t.Errorf("Identifier() = %s", room.Identifier())
	}

	res := ReservationRecord{MongoID: "r1"}
	if res.Identifier() != "r1" {
		t.Errorf("Identifier() = %s", res.Identifier())
	}
}
