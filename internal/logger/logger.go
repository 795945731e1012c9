package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger: human-readable console output in
// development, JSON structured output in production. The logger is passed
// explicitly into every component that needs it — no process-wide global.
func New(production bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
