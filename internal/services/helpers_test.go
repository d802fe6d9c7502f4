package services

import (
	"context"
	"testing"

	"thumbs_up/internal/db/models"
	"thumbs_up/internal/db/repositories/memory"
	"thumbs_up/internal/registry"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	itemKind  = "Item"
	itemTable = "items"
	userKind  = "User"
)

func item(id int64) models.Reference { return models.Ref(itemKind, id) }
func user(id int64) models.Reference { return models.Ref(userKind, id) }

type fixture struct {
	ctx       context.Context
	store     *memory.Store
	registry  *registry.Registry
	voters    VoterService
	voteables VoteableService
}

func newFixture(t *testing.T, mode CountingMode, uniqueVoting bool) *fixture {
	t.Helper()

	store := memory.NewStore(uniqueVoting)
	kinds := registry.New()
	require.NoError(t, kinds.Register(registry.Kind{Name: itemKind, Table: itemTable}))
	require.NoError(t, kinds.Register(registry.Kind{Name: userKind}))

	logger := zap.NewNop().Sugar()

	return &fixture{
		ctx:       context.Background(),
		store:     store,
		registry:  kinds,
		voters:    NewVoterService(store, mode, logger),
		voteables: NewVoteableService(store, kinds, mode, logger),
	}
}
