package kit

import "go.uber.org/zap"

// NewLogger builds the service logger. Anything other than
// "development" gets the production JSON config.
func NewLogger(service, env string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.InitialFields = map[string]any{"service": service}

	l, _ := cfg.Build()
	return l
}
