package generators

import (
	"sync"

	"github.com/quillforge/quill/internal/debug"
	"github.com/quillforge/quill/internal/scaffold/model"
)

// Registry maps generator identities and framework tags to generator
// instances. It is constructed explicitly and injected into the
// orchestrator; there is no package-level singleton.
//
// Registration happens once at process start, before any generation run.
// Thread-safety of concurrent registration is therefore not a design goal;
// the RWMutex is a conservative guard for callers that register late.
type Registry struct {
	mu          sync.RWMutex
	byID        map[string]Generator
	byFramework map[model.Framework][]Generator
	order       []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:        make(map[string]Generator),
		byFramework: make(map[model.Framework][]Generator),
	}
}

// Register inserts a generator by identity. Re-registering an existing
// identity replaces the previous entry and reports replaced=true; the last
// registration wins. The generator is appended to its framework bucket, so
// the first generator registered for a framework stays primary.
func (r *Registry) Register(g Generator) (replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	desc := g.Descriptor()
	if prev, exists := r.byID[desc.ID]; exists {
		debug.Debug("[registry] replacing generator %q (framework %s)", desc.ID, prev.Descriptor().Framework)
		r.removeLocked(desc.ID)
		replaced = true
	}

	r.byID[desc.ID] = g
	r.byFramework[desc.Framework] = append(r.byFramework[desc.Framework], g)
	r.order = append(r.order, desc.ID)
	return replaced
}

// Unregister removes a generator by identity from both lookup structures.
// Returns whether anything was removed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false
	}
	r.removeLocked(id)
	return true
}

// removeLocked removes id from every structure. Caller holds the lock.
func (r *Registry) removeLocked(id string) {
	g := r.byID[id]
	delete(r.byID, id)

	fw := g.Descriptor().Framework
	bucket := r.byFramework[fw]
	for i, candidate := range bucket {
		if candidate.Descriptor().ID == id {
			r.byFramework[fw] = append(bucket[:i:i], bucket[i+1:]...)
			break
		}
	}
	if len(r.byFramework[fw]) == 0 {
		delete(r.byFramework, fw)
	}
	for i, known := range r.order {
		if known == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the generator with the given identity.
func (r *Registry) Get(id string) (Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.byID[id]
	return g, ok
}

// GetByFramework returns the generators registered for a framework, in
// registration order. The slice is a copy; mutating it does not affect the
// registry.
func (r *Registry) GetByFramework(fw model.Framework) []Generator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bucket := r.byFramework[fw]
	out := make([]Generator, len(bucket))
	copy(out, bucket)
	return out
}

// GetPrimary returns the first generator registered for a framework.
func (r *Registry) GetPrimary(fw model.Framework) (Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bucket := r.byFramework[fw]
	if len(bucket) == 0 {
		return nil, false
	}
	return bucket[0], true
}

// GetAll returns every registered generator in registration order.
func (r *Registry) GetAll() []Generator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Generator, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// GetAllMetadata returns the descriptors of every registered generator in
// registration order.
func (r *Registry) GetAllMetadata() []model.Descriptor {
	gens := r.GetAll()
	descs := make([]model.Descriptor, 0, len(gens))
	for _, g := range gens {
		descs = append(descs, g.Descriptor())
	}
	return descs
}

// SupportedFrameworks returns the distinct framework tags with at least one
// registered generator, in canonical framework order.
func (r *Registry) SupportedFrameworks() []model.Framework {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Framework
	for _, fw := range model.Frameworks() {
		if len(r.byFramework[fw]) > 0 {
			out = append(out, fw)
		}
	}
	return out
}

// Clear resets the registry to empty. Test and reinitialization use only.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]Generator)
	r.byFramework = make(map[model.Framework][]Generator)
	r.order = nil
}
