package repositories

import (
	"context"

	"thumbs_up/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type entityRepository struct {
	repository
}

// EntityRepository reads host entities straight from their tables.
type EntityRepository interface {
	GetLabels(ctx context.Context, kind, table, column string, ids []int64) ([]models.Entity, error)
}

func NewEntityRepository(db *pg.DB) EntityRepository {
	return &entityRepository{
		repository: repository{
			db: db,
		},
	}
}

type labelRow struct {
	ID    int64
	Label string
}

// GetLabels loads the column of table for ids as the label of each entity.
// Rows missing from table are left out.
func (r *entityRepository) GetLabels(ctx context.Context, kind, table, column string, ids []int64) ([]models.Entity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []labelRow
	_, err := r.db.QueryContext(ctx, &rows,
		"SELECT id, ?::text AS label FROM ? WHERE id IN (?)",
		pg.Ident(column), pg.Ident(table), pg.In(ids),
	)
	if err != nil {
		return nil, err
	}

	entities := make([]models.Entity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, models.Labeled{
			Reference: models.Ref(kind, row.ID),
			Label:     row.Label,
		})
	}
	return entities, nil
}
