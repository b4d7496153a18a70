package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/NiHaiden/wally/internal/domain"
	"go.uber.org/zap"
)

const _stateFile = "current_wallpaper.json"

// WallpaperStateStore persists the single current-wallpaper record as
// JSON next to the settings file. The record is overwritten wholesale on
// each successful rotation.
type WallpaperStateStore struct {
	logger *zap.Logger
	path   string
	mu     sync.Mutex
}

var _ domain.WallpaperStateStore = (*WallpaperStateStore)(nil)

// NewWallpaperStateStore creates a state store rooted at dir
func NewWallpaperStateStore(logger *zap.Logger, dir string) *WallpaperStateStore {
	return &WallpaperStateStore{
		logger: logger,
		path:   filepath.Join(dir, _stateFile),
	}
}

// Current returns the persisted record, or the zero record when no
// wallpaper has been set yet.
func (s *WallpaperStateStore) Current() (domain.CurrentWallpaper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.CurrentWallpaper{}, nil
	}
	if err != nil {
		return domain.CurrentWallpaper{}, fmt.Errorf("reading state file: %w", err)
	}

	var record domain.CurrentWallpaper
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.CurrentWallpaper{}, fmt.Errorf("parsing state file: %w", err)
	}
	return record, nil
}

// Save overwrites the record with the given image and local path, stamped
// with the current time.
func (s *WallpaperStateStore) Save(image domain.UnsplashImage, localPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.CurrentWallpaper{
		Image:     &image,
		LocalPath: localPath,
		SetAt:     time.Now().UTC(),
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	s.logger.Debug("Current wallpaper saved",
		zap.String("id", image.ID),
		zap.String("path", localPath))
	return nil
}
