package instance

import "testing"

func TestGetIDPrefersExplicitID(t *testing.T) {
	t.Setenv(envInstanceID, "sweeper-1")
	t.Setenv(envDyno, "web.1")
	if got := GetID(); got != "sweeper-1" {
		t.Fatalf("expected sweeper-1, got %q", got)
	}
}

func TestGetIDFallsBackToDyno(t *testing.T) {
	t.Setenv(envInstanceID, "")
	t.Setenv(envDyno, "web.1")
	if got := GetID(); got != "web.1" {
		t.Fatalf("expected web.1, got %q", got)
	}
}

func TestGetIDNeverEmpty(t *testing.T) {
	t.Setenv(envInstanceID, "")
	t.Setenv(envDyno, "")
	if GetID() == "" {
		t.Fatal("expected non-empty id")
	}
}
