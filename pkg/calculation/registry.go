package calculation

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/mamaar/gocalc/pkg/types"
)

// Constructor builds a Calculation from two operands
type Constructor func(a, b float64) Calculation

// Registry maps lowercase operation names to calculation constructors.
// It is populated once at startup and only read afterwards.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
	names        []string
	logger       *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		constructors: make(map[string]Constructor),
		logger:       logger,
	}
}

// NewDefaultRegistry creates a registry holding the built-in operations.
// A duplicate registration here is a programming error and panics.
func NewDefaultRegistry(logger *slog.Logger) *Registry {
	r := NewRegistry(logger)
	if err := RegisterDefaults(r); err != nil {
		panic(fmt.Sprintf("register default calculations: %v", err))
	}
	return r
}

// RegisterDefaults registers add, subtract, multiply, divide and power
func RegisterDefaults(r *Registry) error {
	for _, kind := range Kinds {
		if err := r.Register(strings.ToLower(kind.String()), kind.Constructor()); err != nil {
			return err
		}
	}
	return nil
}

// Register stores ctor under the lowercased name
func (r *Registry) Register(name string, ctor Constructor) error {
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[key]; exists {
		return &types.CalcError{
			Type:      types.DuplicateRegistration,
			Message:   fmt.Sprintf("Calculation type '%s' is already registered.", name),
			Operation: name,
		}
	}
	r.constructors[key] = ctor
	r.names = append(r.names, key)
	r.logger.Debug("registered calculation", "name", key)
	return nil
}

// Create builds the calculation registered under name (case-insensitive)
func (r *Registry) Create(name string, a, b float64) (Calculation, error) {
	key := strings.ToLower(name)

	r.mu.RLock()
	ctor, ok := r.constructors[key]
	available := strings.Join(r.names, ", ")
	r.mu.RUnlock()

	if !ok {
		return Calculation{}, &types.CalcError{
			Type:      types.UnsupportedOperation,
			Message:   fmt.Sprintf("Unsupported calculation type: '%s'. Available types: %s", name, available),
			Operation: name,
		}
	}
	return ctor(a, b), nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[strings.ToLower(name)]
	return ok
}

// Names returns the registered names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
