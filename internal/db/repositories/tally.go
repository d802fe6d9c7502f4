package repositories

import (
	"sort"
	"time"

	"thumbs_up/internal/db/models"
)

type TallyColumn string

const (
	TallyColumnVoteableID TallyColumn = "voteable_id"
	TallyColumnVoteCount  TallyColumn = "vote_count"
	TallyColumnPlusminus  TallyColumn = "plusminus_tally"
	TallyColumnUp         TallyColumn = "up"
	TallyColumnDown       TallyColumn = "down"
)

func (c TallyColumn) valid() bool {
	switch c {
	case TallyColumnVoteableID, TallyColumnVoteCount, TallyColumnPlusminus, TallyColumnUp, TallyColumnDown:
		return true
	}
	return false
}

type TallyOrder struct {
	Column     TallyColumn
	Descending bool
}

// TallyQuery describes a grouped aggregation over every entity of one kind,
// left-outer-joined against its votes. It is refined by chaining and only
// runs when handed to VoteRepository.Tally.
type TallyQuery struct {
	Kind  string
	Table string

	// SkipAware keeps value=0 votes out of plusminus_tally, up and down.
	SkipAware      bool
	SeparateUpDown bool

	// Filter is applied to the joined vote rows before grouping.
	Filter VoteFilter

	VoteCountAbove *int
	Order          []TallyOrder
	RowLimit       int
	RowOffset      int
}

func NewTallyQuery(kind, table string) *TallyQuery {
	return &TallyQuery{
		Kind:  kind,
		Table: table,
		Order: []TallyOrder{{Column: TallyColumnVoteCount, Descending: true}},
	}
}

func (q *TallyQuery) Clone() *TallyQuery {
	clone := *q
	clone.Order = append([]TallyOrder(nil), q.Order...)
	if q.VoteCountAbove != nil {
		n := *q.VoteCountAbove
		clone.VoteCountAbove = &n
	}
	return &clone
}

func (q *TallyQuery) CreatedAfter(t time.Time) *TallyQuery {
	q.Filter.CreatedAfter = t
	return q
}

func (q *TallyQuery) CreatedBefore(t time.Time) *TallyQuery {
	q.Filter.CreatedBefore = t
	return q
}

func (q *TallyQuery) VotedBy(voter models.Entity) *TallyQuery {
	q.Filter = q.Filter.WithVoter(voter)
	return q
}

func (q *TallyQuery) WithDirection(direction models.Direction) *TallyQuery {
	q.Filter = q.Filter.WithDirection(direction)
	return q
}

// HavingVoteCountAbove keeps only groups with more than n matching votes.
func (q *TallyQuery) HavingVoteCountAbove(n int) *TallyQuery {
	q.VoteCountAbove = &n
	return q
}

func (q *TallyQuery) WithUpDown() *TallyQuery {
	q.SeparateUpDown = true
	return q
}

// Reorder replaces the ordering. Unknown columns are ignored.
func (q *TallyQuery) Reorder(column TallyColumn, descending bool) *TallyQuery {
	q.Order = nil
	return q.ThenBy(column, descending)
}

func (q *TallyQuery) ThenBy(column TallyColumn, descending bool) *TallyQuery {
	if column.valid() {
		q.Order = append(q.Order, TallyOrder{Column: column, Descending: descending})
	}
	return q
}

func (q *TallyQuery) Limit(n int) *TallyQuery {
	q.RowLimit = n
	return q
}

func (q *TallyQuery) Offset(n int) *TallyQuery {
	q.RowOffset = n
	return q
}

// ordering always ends on voteable_id so equal scores come back in a stable order.
func (q *TallyQuery) ordering() []TallyOrder {
	order := append([]TallyOrder(nil), q.Order...)
	for _, o := range order {
		if o.Column == TallyColumnVoteableID {
			return order
		}
	}
	return append(order, TallyOrder{Column: TallyColumnVoteableID})
}

type TallyRow struct {
	Kind       string `json:"kind" pg:"-"`
	VoteableID int64  `json:"voteable_id" pg:"voteable_id"`
	VoteCount  int    `json:"vote_count" pg:"vote_count"`
	Plusminus  int    `json:"plusminus_tally" pg:"plusminus_tally"`
	Up         int    `json:"up" pg:"up"`
	Down       int    `json:"down" pg:"down"`
}

func (r TallyRow) EntityKind() string {
	return r.Kind
}

func (r TallyRow) EntityID() int64 {
	return r.VoteableID
}

// PlusminusTally exposes the precomputed score so callers can skip a recount.
func (r TallyRow) PlusminusTally() int {
	return r.Plusminus
}

func (r TallyRow) column(c TallyColumn) int64 {
	switch c {
	case TallyColumnVoteCount:
		return int64(r.VoteCount)
	case TallyColumnPlusminus:
		return int64(r.Plusminus)
	case TallyColumnUp:
		return int64(r.Up)
	case TallyColumnDown:
		return int64(r.Down)
	default:
		return r.VoteableID
	}
}

// SortTallyRows orders rows the way the SQL ORDER BY clause of q would.
func SortTallyRows(rows []TallyRow, q *TallyQuery) {
	order := q.ordering()
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range order {
			a, b := rows[i].column(o.Column), rows[j].column(o.Column)
			if a == b {
				continue
			}
			if o.Descending {
				return a > b
			}
			return a < b
		}
		return false
	})
}

// Page applies offset and limit of q to already ordered rows.
func Page(rows []TallyRow, q *TallyQuery) []TallyRow {
	if q.RowOffset > 0 {
		if q.RowOffset >= len(rows) {
			return rows[:0]
		}
		rows = rows[q.RowOffset:]
	}
	if q.RowLimit > 0 && q.RowLimit < len(rows) {
		rows = rows[:q.RowLimit]
	}
	return rows
}
