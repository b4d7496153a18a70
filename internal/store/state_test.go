package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NiHaiden/wally/internal/domain"
	"go.uber.org/zap"
)

func TestStateCurrentWhenAbsent(t *testing.T) {
	s := NewWallpaperStateStore(zap.NewNop(), t.TempDir())

	got, err := s.Current()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Image != nil || got.LocalPath != "" || !got.SetAt.IsZero() {
		t.Errorf("expected the zero record, got %+v", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := NewWallpaperStateStore(zap.NewNop(), t.TempDir())

	image := domain.UnsplashImage{
		ID:          "abc123",
		Description: "a mountain",
		URLs:        domain.UnsplashURLs{Full: "https://images.example/abc123"},
		User:        domain.UnsplashUser{Name: "Jane Doe", Username: "janedoe"},
		Links: domain.UnsplashLinks{
			DownloadLocation: "https://api.example/photos/abc123/download",
		},
	}

	if err := s.Save(image, "/tmp/wallpaper_abc123.jpg"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if got.Image == nil || got.Image.ID != "abc123" {
		t.Fatalf("expected saved image back, got %+v", got.Image)
	}
	if got.LocalPath != "/tmp/wallpaper_abc123.jpg" {
		t.Errorf("expected local path back, got %q", got.LocalPath)
	}
	if got.SetAt.IsZero() {
		t.Error("expected a set-at timestamp")
	}
}

func TestStateSaveOverwritesWholesale(t *testing.T) {
	s := NewWallpaperStateStore(zap.NewNop(), t.TempDir())

	first := domain.UnsplashImage{ID: "first", Description: "old"}
	second := domain.UnsplashImage{ID: "second"}

	if err := s.Save(first, "/tmp/a.jpg"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Save(second, "/tmp/b.jpg"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if got.Image.ID != "second" || got.LocalPath != "/tmp/b.jpg" {
		t.Errorf("expected the second record to fully replace the first, got %+v", got)
	}
	if got.Image.Description != "" {
		t.Error("fields of the superseded record leaked into the new one")
	}
}

func TestStateCurrentCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "current_wallpaper.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatalf("failed to seed corrupt file: %v", err)
	}

	s := NewWallpaperStateStore(zap.NewNop(), dir)
	if _, err := s.Current(); err == nil {
		t.Error("expected an error for a corrupt state file")
	}
}
