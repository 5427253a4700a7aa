package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[int]Command // menu code -> command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[int]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the code is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := c.Code()
	if existing, exists := r.cmds[code]; exists {
		return fmt.Errorf("command code %d already registered by %s", code, existing.Name())
	}

	r.cmds[code] = c
	return nil
}

// Find looks up a command by menu code.
func (r *Registry) Find(code int) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[code]
	return cmd, ok
}

// All returns all commands in menu order: ascending codes, with code 0 last.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, 0, len(r.cmds))
	for _, cmd := range r.cmds {
		result = append(result, cmd)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Code(), result[j].Code()
		if a == 0 || b == 0 {
			return b == 0 && a != 0
		}
		return a < b
	})
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
