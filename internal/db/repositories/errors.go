package repositories

import (
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

var (
	ErrDuplicateVote   = errors.New("voter has already voted on this voteable")
	ErrMissingVoteable = errors.New("vote requires a voteable reference")
	ErrVoteNotFound    = errors.New("vote not found")
)

const (
	sqlStateNotNullViolation = "23502"
	sqlStateUniqueViolation  = "23505"
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pg.ErrNoRows) {
		return ErrVoteNotFound
	}

	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case sqlStateUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicateVote, err)
		case sqlStateNotNullViolation:
			if column := pgErr.Field('c'); column == "voteable_id" || column == "voteable_type" {
				return fmt.Errorf("%w: %w", ErrMissingVoteable, err)
			}
		}
	}

	return err
}
