package deps

import (
	"context"
	"slices"

	"github.com/matzehuels/repohealth/pkg/errors"
)

// Reader extracts a normalized dependency summary for one ecosystem.
type Reader interface {
	// Name returns the ecosystem identifier (e.g., "python").
	Name() string
	// Applicable reports whether repoPath contains the ecosystem's
	// manifest marker. It has no side effects.
	Applicable(repoPath string) bool
	// Read returns the ecosystem summary, or nil when the repository is
	// not applicable. A manifest that exists but cannot be parsed yields
	// an error with code errors.ErrCodeParse.
	Read(ctx context.Context, repoPath string, opts Options) (*Summary, error)
}

// Ecosystem describes a reader variant and the groups it emits.
// Groups seed the default schema so repositories without the ecosystem
// still report every key at zero.
type Ecosystem struct {
	Name   string
	Groups []string
	New    func() Reader
}

// Registry is an ordered set of ecosystems. Readers run in registration
// order, which keeps aggregation output deterministic.
type Registry struct {
	ecosystems []*Ecosystem
}

// NewRegistry creates a registry holding ecos in the given order.
func NewRegistry(ecos ...*Ecosystem) (*Registry, error) {
	r := &Registry{}
	for _, e := range ecos {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends e. Names must be unique and a constructor is required.
func (r *Registry) Register(e *Ecosystem) error {
	if e == nil || e.Name == "" || e.New == nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid ecosystem registration")
	}
	if r.Find(e.Name) != nil {
		return errors.New(errors.ErrCodeInvalidInput, "ecosystem %q already registered", e.Name)
	}
	r.ecosystems = append(r.ecosystems, e)
	return nil
}

// Find returns the ecosystem with the given name, or nil.
func (r *Registry) Find(name string) *Ecosystem {
	for _, e := range r.ecosystems {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Names lists ecosystem names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.ecosystems))
	for i, e := range r.ecosystems {
		names[i] = e.Name
	}
	return names
}

// Readers instantiates one reader per ecosystem in registration order.
func (r *Registry) Readers() []Reader {
	readers := make([]Reader, len(r.ecosystems))
	for i, e := range r.ecosystems {
		readers[i] = e.New()
	}
	return readers
}

// Groups returns the union of all registered group names, in
// registration order without duplicates.
func (r *Registry) Groups() []string {
	var groups []string
	for _, e := range r.ecosystems {
		for _, g := range e.Groups {
			if !slices.Contains(groups, g) {
				groups = append(groups, g)
			}
		}
	}
	return groups
}

// DefaultSummary returns the all-zero schema covering every registered group.
func (r *Registry) DefaultSummary() *Summary {
	return DefaultSummary(r.Groups()...)
}
