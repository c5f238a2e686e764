package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalString(t *testing.T) {
	t.Parallel()

	var d Duration
	if err := json.Unmarshal([]byte(`"30s"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Duration != 30*time.Second {
		t.Fatalf("got %v, want 30s", d.Duration)
	}
}

func TestDuration_UnmarshalNanos(t *testing.T) {
	t.Parallel()

	var d Duration
	if err := json.Unmarshal([]byte(`1000000000`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Duration != time.Second {
		t.Fatalf("got %v, want 1s", d.Duration)
	}
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var d Duration
	if err := json.Unmarshal([]byte(`true`), &d); err == nil {
		t.Fatalf("expected error for bool input")
	}
	if err := json.Unmarshal([]byte(`"nonsense"`), &d); err == nil {
		t.Fatalf("expected error for bad duration string")
	}
}
