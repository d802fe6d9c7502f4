package configs

type Voting struct {
	// UniqueVoting adds the one-vote-per-voter-per-voteable index when migrating.
	UniqueVoting bool   `env:"UNIQUE_VOTING" envDefault:"true"`
	CountingMode string `env:"VOTE_COUNTING_MODE" envDefault:"skip_aware"`
}
