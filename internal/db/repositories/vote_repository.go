package repositories

import (
	"context"
	"errors"
	"fmt"

	"thumbs_up/internal/db/models"

	"github.com/go-pg/pg/v10"
)

//go:generate mockgen -source=vote_repository.go -destination=mocks/vote_repository.go -package=mock_repositories

const modelAlias = "?TableAlias"

type voteRepository struct {
	repository
}

// VoteRepository is the vote store shared by voters and voteables.
type VoteRepository interface {
	Create(ctx context.Context, request *models.Vote) (*models.Vote, error)
	Replace(ctx context.Context, request *models.Vote) (*models.Vote, error)
	Delete(ctx context.Context, filter VoteFilter) (int, error)
	DeleteVotesOf(ctx context.Context, entity models.Entity) (int, error)
	Count(ctx context.Context, filter VoteFilter) (int, error)
	GetOne(ctx context.Context, filter VoteFilter) (*models.Vote, error)
	GetMany(ctx context.Context, filter VoteFilter) ([]*models.Vote, error)
	IncrementTweeted(ctx context.Context, voteID int64) (*models.Vote, error)
	Tally(ctx context.Context, query *TallyQuery) ([]TallyRow, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(ctx context.Context, request *models.Vote) (*models.Vote, error) {
	if !request.HasVoteable() {
		return nil, ErrMissingVoteable
	}

	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, translateError(err)
	}

	return r.getByID(ctx, r.db, request.ID)
}

// Replace swaps every standing vote of the request's voter on the same
// voteable for request in one transaction. The largest tweeted count of the
// removed rows is carried over.
func (r *voteRepository) Replace(ctx context.Context, request *models.Vote) (*models.Vote, error) {
	if !request.HasVoteable() {
		return nil, ErrMissingVoteable
	}

	voter, ok := request.Voter()
	if !ok {
		return r.Create(ctx, request)
	}

	filter := ByPair(voter, request.Voteable())

	var vote *models.Vote

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		var tweeted int

		err := filter.apply(tx.ModelContext(ctx, (*models.Vote)(nil)), modelAlias).
			ColumnExpr("COALESCE(MAX(?TableAlias.tweeted), 0)").
			Select(pg.Scan(&tweeted))
		if err != nil {
			return err
		}

		_, err = filter.apply(tx.ModelContext(ctx, (*models.Vote)(nil)), modelAlias).Delete()
		if err != nil {
			return err
		}

		if tweeted > request.Tweeted {
			request.Tweeted = tweeted
		}

		if _, err = tx.ModelContext(ctx, request).Insert(); err != nil {
			return err
		}

		vote, err = r.getByID(ctx, tx, request.ID)
		return err
	})
	if err != nil {
		return nil, translateError(err)
	}

	return vote, nil
}

func (r *voteRepository) Delete(ctx context.Context, filter VoteFilter) (int, error) {
	res, err := filter.apply(r.db.ModelContext(ctx, (*models.Vote)(nil)), modelAlias).Delete()
	if err != nil {
		return 0, translateError(err)
	}

	return res.RowsAffected(), nil
}

func (r *voteRepository) DeleteVotesOf(ctx context.Context, entity models.Entity) (int, error) {
	res, err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.
				WhereOrGroup(func(q *pg.Query) (*pg.Query, error) {
					return q.Where("voter_id = ?", entity.EntityID()).
						Where("voter_type = ?", entity.EntityKind()), nil
				}).
				WhereOrGroup(func(q *pg.Query) (*pg.Query, error) {
					return q.Where("voteable_id = ?", entity.EntityID()).
						Where("voteable_type = ?", entity.EntityKind()), nil
				}), nil
		}).
		Delete()
	if err != nil {
		return 0, translateError(err)
	}

	return res.RowsAffected(), nil
}

func (r *voteRepository) Count(ctx context.Context, filter VoteFilter) (int, error) {
	count, err := filter.apply(r.db.ModelContext(ctx, (*models.Vote)(nil)), modelAlias).Count()
	return count, translateError(err)
}

func (r *voteRepository) GetOne(ctx context.Context, filter VoteFilter) (*models.Vote, error) {
	vote := &models.Vote{}

	err := filter.apply(r.db.ModelContext(ctx, vote), modelAlias).
		OrderExpr("id ASC").
		Limit(1).
		Select()
	if err != nil {
		return nil, translateError(err)
	}

	return vote, nil
}

func (r *voteRepository) GetMany(ctx context.Context, filter VoteFilter) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := filter.apply(r.db.ModelContext(ctx, &votes), modelAlias).
		OrderExpr("id ASC").
		Select()

	return votes, translateError(err)
}

func (r *voteRepository) IncrementTweeted(ctx context.Context, voteID int64) (*models.Vote, error) {
	res, err := r.db.ModelContext(ctx, (*models.Vote)(nil)).
		Set("tweeted = tweeted + 1").
		Set("updated_at = now()").
		Where("id = ?", voteID).
		Update()
	if err != nil {
		return nil, translateError(err)
	}

	if res.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: id %d", ErrVoteNotFound, voteID)
	}

	return r.getByID(ctx, r.db, voteID)
}

func (r *voteRepository) Tally(ctx context.Context, query *TallyQuery) ([]TallyRow, error) {
	if query.Table == "" {
		return nil, errors.New("tally query requires a voteable table")
	}

	up, down := "votes.vote", "NOT votes.vote"
	if query.SkipAware {
		up += " AND votes.value <> 0"
		down += " AND votes.value <> 0"
	}

	q := r.db.ModelContext(ctx).
		TableExpr("? AS voteable", pg.Ident(query.Table)).
		ColumnExpr("voteable.id AS voteable_id").
		ColumnExpr("COUNT(votes.id) AS vote_count").
		ColumnExpr("COALESCE(SUM(CASE WHEN "+up+" THEN 1 WHEN "+down+" THEN -1 ELSE 0 END), 0) AS plusminus_tally").
		Join("LEFT OUTER JOIN votes ON votes.voteable_id = voteable.id AND votes.voteable_type = ?", query.Kind).
		GroupExpr("voteable.id")

	if query.SeparateUpDown {
		q = q.
			ColumnExpr("COALESCE(SUM(CASE WHEN " + up + " THEN 1 ELSE 0 END), 0) AS up").
			ColumnExpr("COALESCE(SUM(CASE WHEN " + down + " THEN 1 ELSE 0 END), 0) AS down")
	}

	q = query.Filter.apply(q, "votes")

	if query.VoteCountAbove != nil {
		q = q.Having("COUNT(votes.id) > ?", *query.VoteCountAbove)
	}

	for _, o := range query.ordering() {
		direction := " ASC"
		if o.Descending {
			direction = " DESC"
		}
		q = q.OrderExpr(string(o.Column) + direction)
	}

	if query.RowLimit > 0 {
		q = q.Limit(query.RowLimit)
	}
	if query.RowOffset > 0 {
		q = q.Offset(query.RowOffset)
	}

	rows := make([]TallyRow, 0)
	if err := q.Select(&rows); err != nil {
		return nil, translateError(err)
	}

	for i := range rows {
		rows[i].Kind = query.Kind
	}

	return rows, nil
}

// modeler is satisfied by both *pg.DB and *pg.Tx.
type modeler interface {
	ModelContext(c context.Context, model ...interface{}) *pg.Query
}

func (r *voteRepository) getByID(ctx context.Context, db modeler, voteID int64) (*models.Vote, error) {
	vote := &models.Vote{}

	err := db.ModelContext(ctx, vote).
		Where("id = ?", voteID).
		Select()
	if err != nil {
		return nil, translateError(err)
	}

	return vote, nil
}
