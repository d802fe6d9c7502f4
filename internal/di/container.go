package di

import (
	"context"
	"time"

	"thumbs_up/configs"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

// NewLogger logs to stdout, and additionally ships to Loki when config.URL is set.
func NewLogger(config configs.Logger, app configs.App) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar()
	}

	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "environment": app.Environment},
	}
	return zap.Must(zaploki.New(context.Background(), lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}
