package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the diagnostics logger described by cfg, writing to out.
func NewLogger(cfg *Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Trace {
		level = logrus.TraceLevel
	}

	logger := logrus.New()
	logger.Out = out
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.Formatter = &logrus.JSONFormatter{}
	} else {
		logger.Formatter = &logrus.TextFormatter{
			DisableColors:    !cfg.ColorEnabled(),
			DisableTimestamp: true,
		}
	}
	return logger, nil
}
