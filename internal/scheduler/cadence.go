package scheduler

import (
	"fmt"
	"time"

	"github.com/NiHaiden/wally/internal/domain"
)

var unitDurations = map[domain.IntervalUnit]time.Duration{
	domain.UnitMinutes: time.Minute,
	domain.UnitHours:   time.Hour,
	domain.UnitDays:    24 * time.Hour,
	domain.UnitWeeks:   7 * 24 * time.Hour,
}

// Cadence converts an interval setting into the period between automatic
// rotations. Unknown units fail loudly rather than silently defaulting,
// since a silent default would produce a surprising rotation cadence.
func Cadence(value int, unit domain.IntervalUnit) (time.Duration, error) {
	if value < 1 {
		return 0, domain.NewConfigurationError(fmt.Errorf("interval value must be at least 1, got %d", value))
	}
	d, ok := unitDurations[unit]
	if !ok {
		return 0, domain.NewConfigurationError(fmt.Errorf("unknown interval unit %q", unit))
	}
	return time.Duration(value) * d, nil
}
