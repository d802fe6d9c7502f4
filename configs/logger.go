package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"thumbs_up"`
	URL     string `env:"LOGGER_URL"`
}
