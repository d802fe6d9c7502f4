package configs

type Digest struct {
	Kind  string `env:"DIGEST_KIND,notEmpty"`
	Table string `env:"DIGEST_TABLE,notEmpty"`
	// LabelColumn names the entries of the digest, ids are shown when empty.
	LabelColumn     string `env:"DIGEST_LABEL_COLUMN"`
	Schedule        string `env:"DIGEST_CRON" envDefault:"0 12 * * *"`
	Size            int    `env:"DIGEST_SIZE" envDefault:"10"`
	WindowDays      int    `env:"DIGEST_WINDOW_DAYS" envDefault:"1"`
	HealthCheckAddr string `env:"HEALTH_CHECK_ADDR" envDefault:":8080"`
}
