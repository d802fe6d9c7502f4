package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"thumbs_up/internal/db/models"
)

var ErrUnknownKind = errors.New("entity kind is not registered")

// Resolver loads host entities of one kind. Missing ids are left out of the result.
type Resolver func(ctx context.Context, ids []int64) ([]models.Entity, error)

// Kind describes a host type taking part in voting. Table is only required
// for kinds that are tallied.
type Kind struct {
	Name    string
	Table   string
	Resolve Resolver
}

type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

func New() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

func (r *Registry) Register(kind Kind) error {
	if kind.Name == "" {
		return errors.New("entity kind needs a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.kinds[kind.Name]; ok {
		return fmt.Errorf("entity kind %q is already registered", kind.Name)
	}
	r.kinds[kind.Name] = kind
	return nil
}

func (r *Registry) MustRegister(kind Kind) {
	if err := r.Register(kind); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// Resolve turns references into entities, keeping the order of refs and
// dropping duplicates. Kinds without a resolver come back as bare references.
func (r *Registry) Resolve(ctx context.Context, refs []models.Reference) ([]models.Entity, error) {
	seen := make(map[models.Reference]struct{}, len(refs))
	idsByKind := make(map[string][]int64)
	unique := make([]models.Reference, 0, len(refs))

	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		unique = append(unique, ref)
		idsByKind[ref.Kind] = append(idsByKind[ref.Kind], ref.ID)
	}

	loaded := make(map[models.Reference]models.Entity, len(unique))
	for name, ids := range idsByKind {
		kind, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}

		if kind.Resolve == nil {
			for _, id := range ids {
				loaded[models.Ref(name, id)] = models.Ref(name, id)
			}
			continue
		}

		entities, err := kind.Resolve(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s entities: %w", name, err)
		}
		for _, entity := range entities {
			loaded[models.RefOf(entity)] = entity
		}
	}

	result := make([]models.Entity, 0, len(unique))
	for _, ref := range unique {
		if entity, ok := loaded[ref]; ok {
			result = append(result, entity)
		}
	}
	return result, nil
}
