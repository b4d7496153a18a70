package domain

import "fmt"

// RotationErrorKind classifies which step of a rotation failed
type RotationErrorKind string

const (
	// KindConfiguration covers invalid or rotation-disabling settings
	KindConfiguration RotationErrorKind = "configuration"
	// KindProvider covers photo service failures (network, auth, rate limit)
	KindProvider RotationErrorKind = "provider"
	// KindApply covers wallpaper mutation failures (download, platform, I/O)
	KindApply RotationErrorKind = "apply"
	// KindPersistence covers settings/state storage failures
	KindPersistence RotationErrorKind = "persistence"
)

// RotationError is a classified rotation failure. The scheduler keeps the
// most recent one so a front end can surface it.
type RotationError struct {
	Kind RotationErrorKind
	Err  error
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RotationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError wraps err as a configuration failure
func NewConfigurationError(err error) *RotationError {
	return &RotationError{Kind: KindConfiguration, Err: err}
}

// NewProviderError wraps err as a photo service failure
func NewProviderError(err error) *RotationError {
	return &RotationError{Kind: KindProvider, Err: err}
}

// NewApplyError wraps err as a wallpaper mutation failure
func NewApplyError(err error) *RotationError {
	return &RotationError{Kind: KindApply, Err: err}
}

// NewPersistenceError wraps err as a storage failure
func NewPersistenceError(err error) *RotationError {
	return &RotationError{Kind: KindPersistence, Err: err}
}
