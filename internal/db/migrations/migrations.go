package migrations

import (
	"github.com/go-pg/migrations/v8"
)

const (
	createVotesTable = `
CREATE TABLE IF NOT EXISTS votes (
	id            bigserial PRIMARY KEY,
	vote          boolean DEFAULT false,
	value         integer DEFAULT 0,
	tweeted       integer DEFAULT 0,
	voteable_id   bigint NOT NULL,
	voteable_type varchar(255) NOT NULL,
	voter_id      bigint,
	voter_type    varchar(255),
	created_at    timestamptz NOT NULL DEFAULT now(),
	updated_at    timestamptz NOT NULL DEFAULT now()
)`
	createVoterIndex    = `CREATE INDEX IF NOT EXISTS index_votes_on_voter ON votes (voter_id, voter_type)`
	createVoteableIndex = `CREATE INDEX IF NOT EXISTS index_votes_on_voteable ON votes (voteable_id, voteable_type)`
	dropVotesTable      = `DROP TABLE IF EXISTS votes`

	createUniqueVoteIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS fk_one_vote_per_user_per_entity
	ON votes (voter_id, voter_type, voteable_id, voteable_type)`
	dropUniqueVoteIndex = `DROP INDEX IF EXISTS fk_one_vote_per_user_per_entity`
)

// NewCollection returns the schema migrations of the votes table. With
// uniqueVoting the second migration adds the one-vote-per-pair index,
// otherwise it is a no-op so schema versions stay aligned.
func NewCollection(uniqueVoting bool) *migrations.Collection {
	collection := migrations.NewCollection(
		&migrations.Migration{
			Version: 1,
			UpTx:    true,
			Up:      exec(createVotesTable, createVoterIndex, createVoteableIndex),
			DownTx:  true,
			Down:    exec(dropVotesTable),
		},
		&migrations.Migration{
			Version: 2,
			UpTx:    true,
			Up:      uniqueVoteIndex(uniqueVoting),
			DownTx:  true,
			Down:    exec(dropUniqueVoteIndex),
		},
	)

	return collection.DisableSQLAutodiscover(true)
}

func uniqueVoteIndex(uniqueVoting bool) func(migrations.DB) error {
	if !uniqueVoting {
		return exec()
	}
	return exec(createUniqueVoteIndex)
}

func exec(statements ...string) func(migrations.DB) error {
	return func(db migrations.DB) error {
		for _, statement := range statements {
			if _, err := db.Exec(statement); err != nil {
				return err
			}
		}
		return nil
	}
}
