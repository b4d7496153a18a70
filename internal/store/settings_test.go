package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NiHaiden/wally/internal/domain"
	"github.com/zalando/go-keyring"
	"go.uber.org/zap"
)

func TestSettingsReadDefaults(t *testing.T) {
	keyring.MockInit()
	s := NewSettingsStore(zap.NewNop(), t.TempDir())

	got, err := s.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.DefaultSettings()
	if got != want {
		t.Errorf("expected first-run defaults %+v, got %+v", want, got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	keyring.MockInit()
	dir := t.TempDir()
	s := NewSettingsStore(zap.NewNop(), dir)

	want := domain.RotationSettings{
		APIKey:        "secret-key",
		CollectionID:  "12345",
		IntervalValue: 45,
		IntervalUnit:  domain.UnitMinutes,
		AutoChange:    true,
	}
	if err := s.Write(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: wrote %+v, read %+v", want, got)
	}

	// With a working keyring the key must never land on disk.
	data, err := os.ReadFile(filepath.Join(dir, "settings.toml"))
	if err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
	if strings.Contains(string(data), "secret-key") {
		t.Error("API key leaked into the settings file despite a working keyring")
	}
}

func TestSettingsWriteFallsBackWithoutKeyring(t *testing.T) {
	keyring.MockInitWithError(keyring.ErrUnsupportedPlatform)
	dir := t.TempDir()
	s := NewSettingsStore(zap.NewNop(), dir)

	want := domain.DefaultSettings()
	want.APIKey = "file-key"
	want.AutoChange = true
	if err := s.Write(want); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "settings.toml"))
	if err != nil {
		t.Fatalf("settings file missing: %v", err)
	}
	if !strings.Contains(string(data), "file-key") {
		t.Error("expected API key in the settings file when no keyring is available")
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.APIKey != "file-key" {
		t.Errorf("expected file fallback key, got %q", got.APIKey)
	}
}

func TestSettingsWriteValidates(t *testing.T) {
	keyring.MockInit()
	s := NewSettingsStore(zap.NewNop(), t.TempDir())

	bad := domain.DefaultSettings()
	bad.IntervalValue = 0
	if err := s.Write(bad); err == nil {
		t.Error("expected an error for a zero interval value")
	}

	bad = domain.DefaultSettings()
	bad.IntervalUnit = "eons"
	if err := s.Write(bad); err == nil {
		t.Error("expected an error for an unknown interval unit")
	}
}

func TestSettingsReadCorruptFile(t *testing.T) {
	keyring.MockInit()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("[[[not toml"), 0o600); err != nil {
		t.Fatalf("failed to seed corrupt file: %v", err)
	}

	s := NewSettingsStore(zap.NewNop(), dir)
	if _, err := s.Read(); err == nil {
		t.Error("expected an error for a corrupt settings file")
	}
}
