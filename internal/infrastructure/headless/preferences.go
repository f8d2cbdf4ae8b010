package headless

import (
	"fmt"
	"sync"

	"github.com/bnema/osrview/internal/application/port"
)

// Preferences is a request-context preference store.
type Preferences struct {
	mu     sync.Mutex
	values map[string]any
}

var _ port.PreferenceSetter = (*Preferences)(nil)

// Preference names seeded from the engine options.
const (
	prefUserAgent       = "user_agent"
	prefAcceptLanguages = "intl.accept_languages"
)

func NewPreferences() *Preferences {
	return &Preferences{values: make(map[string]any)}
}

func newSeededPreferences(defaults map[string]string) *Preferences {
	p := NewPreferences()
	for k, v := range defaults {
		p.values[k] = v
	}
	return p
}

// SetPreference accepts booleans, integers and strings.
func (p *Preferences) SetPreference(name string, value any) error {
	switch value.(type) {
	case bool, int, string:
	default:
		return fmt.Errorf("preference %q: unsupported value type %T", name, value)
	}
	p.mu.Lock()
	p.values[name] = value
	p.mu.Unlock()
	return nil
}

// Get returns the stored value of name.
func (p *Preferences) Get(name string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[name]
	return v, ok
}
