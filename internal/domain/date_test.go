package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2026, time.January, 5, 23, 45, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-01-05"` {
		t.Fatalf("marshaled date = %s", data)
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("round trip changed date: %s != %s", parsed, d)
	}
}

func TestDateTruncatesTime(t *testing.T) {
	d := NewDate(time.Date(2026, time.June, 1, 18, 30, 12, 0, time.UTC))
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("date retains time of day: %v", d.Time)
	}
}

func TestDateRejectsNonString(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`20260105`), &d); err == nil {
		t.Fatal("expected error for numeric date")
	}
	if err := json.Unmarshal([]byte(`"05/01/2026"`), &d); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}
