package registry

import (
	"context"
	"errors"
	"testing"

	"thumbs_up/internal/db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	id   int64
	name string
}

func (u user) EntityKind() string { return "User" }
func (u user) EntityID() int64    { return u.id }

func TestRegister_Duplicate(t *testing.T) {
	r := New()

	require.NoError(t, r.Register(Kind{Name: "User"}))
	assert.Error(t, r.Register(Kind{Name: "User"}))
}

func TestRegister_EmptyName(t *testing.T) {
	assert.Error(t, New().Register(Kind{}))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := New().Lookup("Item")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestResolve_KeepsOrderAndDropsDuplicates(t *testing.T) {
	r := New()
	calls := 0
	r.MustRegister(Kind{
		Name: "User",
		Resolve: func(_ context.Context, ids []int64) ([]models.Entity, error) {
			calls++
			entities := make([]models.Entity, 0, len(ids))
			for _, id := range ids {
				if id == 404 {
					continue
				}
				entities = append(entities, user{id: id, name: "user"})
			}
			return entities, nil
		},
	})
	r.MustRegister(Kind{Name: "Bot"})

	entities, err := r.Resolve(context.Background(), []models.Reference{
		models.Ref("User", 2),
		models.Ref("Bot", 9),
		models.Ref("User", 404),
		models.Ref("User", 1),
		models.Ref("User", 2),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []models.Entity{
		user{id: 2, name: "user"},
		models.Ref("Bot", 9),
		user{id: 1, name: "user"},
	}, entities)
}

func TestResolve_UnknownKind(t *testing.T) {
	_, err := New().Resolve(context.Background(), []models.Reference{models.Ref("Ghost", 1)})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestResolve_ResolverError(t *testing.T) {
	r := New()
	r.MustRegister(Kind{
		Name: "User",
		Resolve: func(context.Context, []int64) ([]models.Entity, error) {
			return nil, errors.New("database error")
		},
	})

	_, err := r.Resolve(context.Background(), []models.Reference{models.Ref("User", 1)})
	assert.Error(t, err)
}
