package keymap

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Binding maps a key to a command within a focus context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves key presses to commands per context.
type Registry struct {
	mu        sync.RWMutex
	bindings  []Binding
	byContext map[string]map[string]string // context -> key -> command
	overrides map[string]string            // key -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byContext: make(map[string]map[string]string),
		overrides: make(map[string]string),
	}
}

// RegisterBinding adds a binding, replacing any binding for the same key and context.
func (r *Registry) RegisterBinding(b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(b)
}

func (r *Registry) register(b Binding) {
	keys := r.byContext[b.Context]
	if keys == nil {
		keys = make(map[string]string)
		r.byContext[b.Context] = keys
	}
	if _, exists := keys[b.Key]; exists {
		for i := range r.bindings {
			if r.bindings[i].Key == b.Key && r.bindings[i].Context == b.Context {
				r.bindings[i].Command = b.Command
			}
		}
	} else {
		r.bindings = append(r.bindings, b)
	}
	keys[b.Key] = b.Command
}

// SetUserOverride binds key to cmdID in every context that already knows cmdID.
func (r *Registry) SetUserOverride(key, cmdID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[key] = cmdID

	var contexts []string
	seen := make(map[string]bool)
	for _, b := range r.bindings {
		if b.Command == cmdID && !seen[b.Context] {
			seen[b.Context] = true
			contexts = append(contexts, b.Context)
		}
	}
	for _, ctx := range contexts {
		r.register(Binding{Key: key, Command: cmdID, Context: ctx})
	}
}

// Overrides returns a copy of the user overrides.
func (r *Registry) Overrides() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.overrides))
	for k, v := range r.overrides {
		out[k] = v
	}
	return out
}

// Resolve returns the command bound to key in context, falling back to global.
func (r *Registry) Resolve(key, context string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cmd, ok := r.byContext[context][key]; ok {
		return cmd, true
	}
	if cmd, ok := r.byContext[ContextGlobal][key]; ok {
		return cmd, true
	}
	return "", false
}

// Lookup resolves a key message in context.
func (r *Registry) Lookup(msg tea.KeyMsg, context string) (string, bool) {
	return r.Resolve(msg.String(), context)
}

// BindingsForContext returns bindings registered for context, in registration order.
func (r *Registry) BindingsForContext(context string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Binding
	for _, b := range r.bindings {
		if b.Context == context {
			out = append(out, b)
		}
	}
	return out
}

// KeysFor returns the keys bound to cmdID in context.
func (r *Registry) KeysFor(context, cmdID string) []string {
	var keys []string
	for _, b := range r.BindingsForContext(context) {
		if b.Command == cmdID {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// Hint is a footer hint: the first key bound to a command.
type Hint struct {
	Key     string
	Command string
}

// Hints returns one hint per command bound in context, in registration order.
func (r *Registry) Hints(context string) []Hint {
	var hints []Hint
	seen := make(map[string]bool)
	for _, b := range r.BindingsForContext(context) {
		if seen[b.Command] {
			continue
		}
		seen[b.Command] = true
		hints = append(hints, Hint{Key: b.Key, Command: b.Command})
	}
	return hints
}
