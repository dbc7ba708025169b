package metrics

import (
	"sort"
	"strings"
	"sync"

	"github.com/kbukum/convodyn/errors"
	"github.com/kbukum/convodyn/util"
)

// Factory creates a metric instance.
type Factory func() Feature

// Registry manages named metric factories. Lookup is tolerant of case and
// surrounding whitespace ("Speaking Time" resolves to "speaking_time").
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register registers a named factory for creating metrics.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[util.SanitizeKey(name)] = factory
}

// Create instantiates a metric by name. Unknown names return NOT_FOUND with
// the available metric names in the error details.
func (r *Registry) Create(name string) (Feature, error) {
	r.mu.RLock()
	factory, ok := r.factories[util.SanitizeKey(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("metric", name).
			WithDetail("available", strings.Join(r.List(), ", "))
	}
	return factory(), nil
}

// CreateAll instantiates the named metrics in order, failing on the first
// unknown name.
func (r *Registry) CreateAll(names []string) ([]Feature, error) {
	features := make([]Feature, 0, len(names))
	for _, name := range names {
		f, err := r.Create(name)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, nil
}

// List returns sorted names of all registered factories.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultNames are the metrics enabled when none are configured.
var DefaultNames = []string{
	SpeakingTimeName,
	TurnLengthName,
	PausesName,
	AdaptabilityName,
}

// Default returns a registry with every built-in metric registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(SpeakingTimeName, func() Feature { return NewSpeakingTime() })
	r.Register(TurnLengthName, func() Feature { return NewTurnLength() })
	r.Register(PausesName, func() Feature { return NewPauses() })
	r.Register(AdaptabilityName, func() Feature { return NewAdaptability() })
	r.Register(ResponseTimeName, func() Feature { return NewResponseTime() })
	r.Register(BackchannelsName, func() Feature { return NewBackchannels() })
	r.Register(SpeakerRateName, func() Feature { return NewSpeakerRate() })
	return r
}
