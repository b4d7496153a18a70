package applier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/NiHaiden/wally/internal/domain"
	"go.uber.org/zap"
)

const (
	_maxImageSize = 50 * 1024 * 1024 // 50 MB
	_keepCount    = 10
	_filePrefix   = "wallpaper_"
	_jpegQuality  = 92
)

// Setter applies an already-downloaded image file as the desktop
// background. One implementation per platform, selected by build tags.
type Setter interface {
	Set(ctx context.Context, imagePath string) error
}

// Applier downloads wallpaper images, normalizes them to JPEG and hands
// them to the platform setter. It keeps only the most recent wallpapers
// in its storage directory.
type Applier struct {
	logger *zap.Logger
	client *http.Client
	setter Setter
	dir    string
}

var _ domain.WallpaperApplier = (*Applier)(nil)

// New creates an applier storing wallpapers under dir
func New(logger *zap.Logger, setter Setter, dir string) *Applier {
	return &Applier{
		logger: logger,
		client: &http.Client{
			// Full-size photos over slow links take a while; the scheduler
			// tolerates a slow apply but not a hung one.
			Timeout: 60 * time.Second,
		},
		setter: setter,
		dir:    dir,
	}
}

// DefaultDir returns ~/Pictures/unsplash_wallpapers, creating it if
// needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, "Pictures", "unsplash_wallpapers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating wallpaper directory: %w", err)
	}
	return dir, nil
}

// Apply downloads the image at imageURL, writes it to the wallpaper
// directory as wallpaper_<imageID>.jpg, sets it as the desktop
// background and returns the written path.
func (a *Applier) Apply(ctx context.Context, imageURL, imageID string) (string, error) {
	data, err := a.download(ctx, imageURL)
	if err != nil {
		return "", err
	}

	// Normalize to JPEG regardless of what the service served; the
	// platform setters rely on a stable file type.
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	path := filepath.Join(a.dir, fmt.Sprintf("%s%s.jpg", _filePrefix, imageID))
	if err := imaging.Save(img, path, imaging.JPEGQuality(_jpegQuality)); err != nil {
		return "", fmt.Errorf("failed to write wallpaper file: %w", err)
	}

	if err := a.setter.Set(ctx, path); err != nil {
		return "", fmt.Errorf("failed to set wallpaper: %w", err)
	}

	a.logger.Info("Wallpaper applied", zap.String("path", path))
	a.prune()
	return path, nil
}

// SaveTo downloads the image at imageURL into dir under filename without
// touching the desktop wallpaper, and returns the written path. Used for
// explicit "download this photo" requests.
func (a *Applier) SaveTo(ctx context.Context, imageURL, dir, filename string) (string, error) {
	data, err := a.download(ctx, imageURL)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	a.logger.Info("Image downloaded", zap.String("path", path))
	return path, nil
}

func (a *Applier) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "wallyd/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("url is not an image: %s", ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	a.logger.Debug("Image downloaded", zap.Int("bytes", len(data)), zap.String("url", imageURL))
	return data, nil
}

// prune removes all but the newest wallpapers from the storage directory.
// Failures only cost disk space, so they are logged and ignored.
func (a *Applier) prune() {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		a.logger.Warn("Failed to scan wallpaper directory", zap.Error(err))
		return
	}

	type wallpaperFile struct {
		path string
		mod  time.Time
	}
	var found []wallpaperFile
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, _filePrefix) || !strings.HasSuffix(name, ".jpg") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, wallpaperFile{
			path: filepath.Join(a.dir, name),
			mod:  info.ModTime(),
		})
	}
	if len(found) <= _keepCount {
		return
	}

	sort.Slice(found, func(i, j int) bool { return found[i].mod.After(found[j].mod) })
	for _, old := range found[_keepCount:] {
		if err := os.Remove(old.path); err != nil {
			a.logger.Warn("Failed to remove old wallpaper", zap.String("path", old.path), zap.Error(err))
		}
	}
}
