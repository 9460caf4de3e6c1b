package dodge

import (
	"errors"
	"time"
)

// ErrUnknownSpeed is returned when selecting a speed preset that does not exist.
var ErrUnknownSpeed = errors.New("dodge: unknown speed")

// Speed is a named tick interval.
type Speed struct {
	Name     string
	Interval time.Duration
}

// Speeds is an ordered set of presets.
type Speeds []Speed

// Lookup finds a preset by name.
func (s Speeds) Lookup(name string) (Speed, bool) {
	for _, sp := range s {
		if sp.Name == name {
			return sp, true
		}
	}
	return Speed{}, false
}

// Names returns the preset names in order.
func (s Speeds) Names() []string {
	names := make([]string, len(s))
	for i, sp := range s {
		names[i] = sp.Name
	}
	return names
}
