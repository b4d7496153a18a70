package domain

import "context"

//go:generate mockgen -destination=mocks/collaborators_mock.go -package=mocks github.com/NiHaiden/wally/internal/domain SettingsStore,WallpaperStateStore,ImageProvider,WallpaperApplier,DownloadNotifier

// SettingsStore is the durable record of the rotation settings
type SettingsStore interface {
	// Read loads the persisted settings, falling back to defaults when
	// nothing has been saved yet
	Read() (RotationSettings, error)

	// Write persists the settings wholesale
	Write(settings RotationSettings) error
}

// WallpaperStateStore persists the single current-wallpaper record
type WallpaperStateStore interface {
	// Current returns the persisted record, or the zero record when no
	// wallpaper has been set yet
	Current() (CurrentWallpaper, error)

	// Save overwrites the record with the given image and local file path,
	// stamping it with the save time
	Save(image UnsplashImage, localPath string) error
}

// ImageProvider fetches one random image descriptor from the photo service
type ImageProvider interface {
	// FetchRandom returns a random landscape photo, scoped to collectionID
	// when non-empty
	FetchRandom(ctx context.Context, collectionID string) (*UnsplashImage, error)
}

// WallpaperApplier performs the OS-specific mutation that puts an image
// on the desktop
type WallpaperApplier interface {
	// Apply downloads the image at imageURL and sets it as the desktop
	// background, returning the local file path it used
	Apply(ctx context.Context, imageURL, imageID string) (string, error)
}

// DownloadNotifier reports a download to the photo service. This is
// attribution telemetry required by the Unsplash API guidelines; failures
// are logged by the caller, never propagated.
type DownloadNotifier interface {
	NotifyDownload(ctx context.Context, downloadLocation string) error
}
