package applier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

type fakeSetter struct {
	paths []string
	err   error
}

func (f *fakeSetter) Set(ctx context.Context, imagePath string) error {
	f.paths = append(f.paths, imagePath)
	return f.err
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(8, 8, color.NRGBA{R: 40, G: 80, B: 120, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func imageServer(t *testing.T, contentType string, body []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestApply(t *testing.T) {
	server := imageServer(t, "image/jpeg", jpegBytes(t))
	dir := t.TempDir()
	setter := &fakeSetter{}
	a := New(zap.NewNop(), setter, dir)

	path, err := a.Apply(context.Background(), server.URL, "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := filepath.Join(dir, "wallpaper_abc123.jpg"); path != want {
		t.Errorf("expected path %q, got %q", want, path)
	}
	if len(setter.paths) != 1 || setter.paths[0] != path {
		t.Errorf("expected setter invoked with %q, got %v", path, setter.paths)
	}

	// The written file must decode as an image again.
	if _, err := imaging.Open(path); err != nil {
		t.Errorf("written wallpaper does not decode: %v", err)
	}
}

func TestApplySetterFailure(t *testing.T) {
	server := imageServer(t, "image/jpeg", jpegBytes(t))
	setter := &fakeSetter{err: errors.New("no display")}
	a := New(zap.NewNop(), setter, t.TempDir())

	_, err := a.Apply(context.Background(), server.URL, "abc123")
	if err == nil || !strings.Contains(err.Error(), "failed to set wallpaper") {
		t.Fatalf("expected setter failure, got %v", err)
	}
}

func TestApplyRejectsNonImage(t *testing.T) {
	server := imageServer(t, "text/html", []byte("<html>not found</html>"))
	setter := &fakeSetter{}
	a := New(zap.NewNop(), setter, t.TempDir())

	_, err := a.Apply(context.Background(), server.URL, "abc123")
	if err == nil || !strings.Contains(err.Error(), "url is not an image") {
		t.Fatalf("expected content-type rejection, got %v", err)
	}
	if len(setter.paths) != 0 {
		t.Error("setter must not run on a failed download")
	}
}

func TestApplyRejectsUndecodableImage(t *testing.T) {
	server := imageServer(t, "image/jpeg", []byte("definitely-not-a-jpeg"))
	a := New(zap.NewNop(), &fakeSetter{}, t.TempDir())

	_, err := a.Apply(context.Background(), server.URL, "abc123")
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode failure, got %v", err)
	}
}

func TestSaveTo(t *testing.T) {
	body := jpegBytes(t)
	server := imageServer(t, "image/jpeg", body)
	dir := t.TempDir()
	setter := &fakeSetter{}
	a := New(zap.NewNop(), setter, t.TempDir())

	path, err := a.SaveTo(context.Background(), server.URL, dir, "photo.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "photo.jpg"); path != want {
		t.Errorf("expected path %q, got %q", want, path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Error("saved file does not match the downloaded bytes")
	}
	if len(setter.paths) != 0 {
		t.Error("plain downloads must not touch the desktop wallpaper")
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	a := New(zap.NewNop(), &fakeSetter{}, dir)

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 13; i++ {
		path := filepath.Join(dir, fmt.Sprintf("wallpaper_img%02d.jpg", i))
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to seed wallpaper: %v", err)
		}
		mod := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatalf("failed to stamp wallpaper: %v", err)
		}
	}
	unrelated := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("failed to seed unrelated file: %v", err)
	}

	a.prune()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	var kept []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "wallpaper_") {
			kept = append(kept, e.Name())
		}
	}
	if len(kept) != 10 {
		t.Fatalf("expected 10 wallpapers kept, got %d: %v", len(kept), kept)
	}
	// The three oldest must be the ones gone.
	for _, name := range []string{"wallpaper_img00.jpg", "wallpaper_img01.jpg", "wallpaper_img02.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected %s to be pruned", name)
		}
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Errorf("unrelated file must survive pruning: %v", err)
	}
}
