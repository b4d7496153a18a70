package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/NiHaiden/wally/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"github.com/zalando/go-keyring"
	"go.uber.org/zap"
)

const (
	_settingsFile   = "settings.toml"
	_keyringService = "wally"
	_keyringUser    = "unsplash-api-key"
)

// DefaultConfigDir returns ~/.config/wally (or the platform equivalent),
// creating it if needed.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	dir := filepath.Join(base, "wally")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}

// SettingsStore persists rotation settings as TOML under the user config
// directory. The Unsplash API key goes to the OS keyring when one is
// available; environments without a keyring fall back to keeping the key
// in the settings file.
type SettingsStore struct {
	logger *zap.Logger
	path   string
	mu     sync.Mutex
}

var _ domain.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a settings store rooted at dir
func NewSettingsStore(logger *zap.Logger, dir string) *SettingsStore {
	return &SettingsStore{
		logger: logger,
		path:   filepath.Join(dir, _settingsFile),
	}
}

type settingsFile struct {
	APIKey        string `toml:"api_key,omitempty"`
	CollectionID  string `toml:"collection_id"`
	IntervalValue int    `toml:"interval_value"`
	IntervalUnit  string `toml:"interval_unit"`
	AutoChange    bool   `toml:"auto_change"`
}

// Read loads the persisted settings. A missing file yields the first-run
// defaults, not an error.
func (s *SettingsStore) Read() (domain.RotationSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run.
	case err != nil:
		return domain.RotationSettings{}, fmt.Errorf("reading settings file: %w", err)
	default:
		var f settingsFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return domain.RotationSettings{}, fmt.Errorf("parsing settings file: %w", err)
		}
		settings = domain.RotationSettings{
			APIKey:        f.APIKey,
			CollectionID:  f.CollectionID,
			IntervalValue: f.IntervalValue,
			IntervalUnit:  domain.IntervalUnit(f.IntervalUnit),
			AutoChange:    f.AutoChange,
		}
	}

	if key, err := keyring.Get(_keyringService, _keyringUser); err == nil && key != "" {
		settings.APIKey = key
	}

	return settings, nil
}

// Write persists the settings wholesale. Interval invariants are checked
// here so a bad front end cannot smuggle an unusable cadence to disk.
func (s *SettingsStore) Write(settings domain.RotationSettings) error {
	if settings.IntervalValue < 1 {
		return fmt.Errorf("interval value must be at least 1, got %d", settings.IntervalValue)
	}
	if !settings.IntervalUnit.Valid() {
		return fmt.Errorf("unknown interval unit %q", settings.IntervalUnit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := settingsFile{
		APIKey:        settings.APIKey,
		CollectionID:  settings.CollectionID,
		IntervalValue: settings.IntervalValue,
		IntervalUnit:  string(settings.IntervalUnit),
		AutoChange:    settings.AutoChange,
	}

	if settings.APIKey == "" {
		_ = keyring.Delete(_keyringService, _keyringUser)
	} else if err := keyring.Set(_keyringService, _keyringUser, settings.APIKey); err != nil {
		s.logger.Warn("Keyring unavailable, keeping API key in the settings file", zap.Error(err))
	} else {
		// The key lives in the keyring; keep it out of the file.
		f.APIKey = ""
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	s.logger.Info("Settings saved",
		zap.String("collection", settings.CollectionID),
		zap.Int("interval_value", settings.IntervalValue),
		zap.String("interval_unit", string(settings.IntervalUnit)),
		zap.Bool("auto_change", settings.AutoChange))
	return nil
}
