package main

import (
	"context"
	"testing"
	"time"

	"thumbs_up/configs"
	"thumbs_up/internal/db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEntityRepository struct {
	kind, table, column string
	ids                 []int64
}

func (r *stubEntityRepository) GetLabels(_ context.Context, kind, table, column string, ids []int64) ([]models.Entity, error) {
	r.kind, r.table, r.column, r.ids = kind, table, column, ids
	return []models.Entity{models.Labeled{Reference: models.Ref(kind, ids[0]), Label: "first"}}, nil
}

func TestDigestWindow_LastDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	from, to := digestWindow(now, 7)

	assert.Equal(t, time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)
}

func TestDigestWindow_AllTime(t *testing.T) {
	from, to := digestWindow(time.Now(), 0)

	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())
}

func TestDigestKind_WithoutLabelColumn(t *testing.T) {
	kind := digestKind(configs.Digest{Kind: "Item", Table: "items"}, &stubEntityRepository{})

	assert.Equal(t, "Item", kind.Name)
	assert.Equal(t, "items", kind.Table)
	assert.Nil(t, kind.Resolve)
}

func TestDigestKind_WithLabelColumn(t *testing.T) {
	repo := &stubEntityRepository{}
	kind := digestKind(configs.Digest{Kind: "Item", Table: "items", LabelColumn: "name"}, repo)

	require.NotNil(t, kind.Resolve)

	entities, err := kind.Resolve(context.Background(), []int64{4, 5})
	require.NoError(t, err)

	assert.Equal(t, "Item", repo.kind)
	assert.Equal(t, "items", repo.table)
	assert.Equal(t, "name", repo.column)
	assert.Equal(t, []int64{4, 5}, repo.ids)
	require.Len(t, entities, 1)
	assert.Equal(t, "first", entities[0].(models.Labeled).String())
}

func TestNewAnnouncer_NothingConfigured(t *testing.T) {
	announcer, err := newAnnouncer(configs.TallyDigestConfig{})

	assert.ErrorIs(t, err, errNoAnnouncer)
	assert.Nil(t, announcer)
}

func TestNewAnnouncer_Discord(t *testing.T) {
	announcer, err := newAnnouncer(configs.TallyDigestConfig{
		Discord: configs.Discord{Token: "token", ChannelID: "channel"},
	})

	require.NoError(t, err)
	assert.NotNil(t, announcer)
}
