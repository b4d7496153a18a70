package domain

import "time"

// IntervalUnit is the unit of the rotation interval setting
type IntervalUnit string

const (
	// UnitMinutes rotates every N minutes
	UnitMinutes IntervalUnit = "minutes"
	// UnitHours rotates every N hours
	UnitHours IntervalUnit = "hours"
	// UnitDays rotates every N days
	UnitDays IntervalUnit = "days"
	// UnitWeeks rotates every N weeks
	UnitWeeks IntervalUnit = "weeks"
)

// Valid reports whether the unit is one of the supported interval units
func (u IntervalUnit) Valid() bool {
	switch u {
	case UnitMinutes, UnitHours, UnitDays, UnitWeeks:
		return true
	}
	return false
}

// RotationSettings holds the user-configured rotation behavior.
// It is read by the scheduler at arm time and re-read at each tick.
type RotationSettings struct {
	// APIKey is the Unsplash access key. May be empty, which disables rotation.
	APIKey string
	// CollectionID scopes random fetches to one collection. Empty = unfiltered.
	CollectionID string
	// IntervalValue is the number of IntervalUnits between rotations. Must be >= 1.
	IntervalValue int
	// IntervalUnit is the unit IntervalValue is expressed in
	IntervalUnit IntervalUnit
	// AutoChange enables the automatic rotation timer
	AutoChange bool
}

// DefaultSettings returns the first-run configuration
func DefaultSettings() RotationSettings {
	return RotationSettings{
		CollectionID:  "880012",
		IntervalValue: 3,
		IntervalUnit:  UnitHours,
		AutoChange:    false,
	}
}

// UnsplashURLs are the rendered sizes of a photo
type UnsplashURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// UnsplashUser identifies the photographer for attribution
type UnsplashUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// UnsplashLinks carries the attribution endpoints of a photo.
// DownloadLocation must be hit once per applied wallpaper per the
// Unsplash API guidelines.
type UnsplashLinks struct {
	HTML             string `json:"html"`
	Download         string `json:"download"`
	DownloadLocation string `json:"download_location"`
}

// UnsplashImage is one photo descriptor as returned by the Unsplash API.
// Immutable once fetched; the scheduler owns it transiently for the
// duration of one rotation, then hands it to the state store.
type UnsplashImage struct {
	ID             string        `json:"id"`
	Description    string        `json:"description"`
	AltDescription string        `json:"alt_description"`
	URLs           UnsplashURLs  `json:"urls"`
	User           UnsplashUser  `json:"user"`
	Links          UnsplashLinks `json:"links"`
}

// CurrentWallpaper is the single persisted "what is on the desktop now"
// record. Each successful rotation overwrites it wholesale; no history
// is kept.
type CurrentWallpaper struct {
	Image     *UnsplashImage `json:"image,omitempty"`
	LocalPath string         `json:"local_path,omitempty"`
	SetAt     time.Time      `json:"set_at,omitzero"`
}

// ScreenResolution holds the primary display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}
