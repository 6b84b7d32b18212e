package cooldown

import (
	"fmt"
	"time"

	"github.com/mwei-dev/CaseSim_Go/internal/domain"
)

// DefaultDrawCooldown is the minimum interval between two draws by one user.
const DefaultDrawCooldown = 10 * time.Second

// Policy holds the cooldown duration applied between draws.
type Policy struct {
	Duration time.Duration
}

// NewPolicy returns a policy with the given duration, falling back to the
// default when non-positive.
func NewPolicy(d time.Duration) Policy {
	if d <= 0 {
		d = DefaultDrawCooldown
	}
	return Policy{Duration: d}
}

// Check reports whether a draw at `now` is still cooling down given the time
// of the previous draw. A nil lastDraw always allows.
func (p Policy) Check(lastDraw *time.Time, now time.Time) (onCooldown bool, remaining time.Duration) {
	if lastDraw == nil {
		return false, 0
	}
	elapsed := now.Sub(*lastDraw)
	if elapsed < p.Duration {
		return true, p.Duration - elapsed
	}
	return false, 0
}

// ErrOnCooldown is returned when a draw is denied by the rate limiter.
type ErrOnCooldown struct {
	Remaining time.Duration
}

// RemainingSeconds returns the remaining wait rounded up to whole seconds,
// never less than 1 while on cooldown.
func (e ErrOnCooldown) RemainingSeconds() int {
	secs := int((e.Remaining + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf("%d seconds until next draw", e.RemainingSeconds())
}

// Is matches both the typed error and the domain sentinel, so callers can
// test errors.Is(err, domain.ErrOnCooldown) without knowing the concrete type.
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
