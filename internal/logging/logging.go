// Package logging builds the process logger from config.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/esmelusina/AgentFSMExample/internal/config"
)

// New returns a logger writing to w at the configured level.
func New(w io.Writer, cfg config.LogConfig, prefix string) (*log.Logger, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		l, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = l
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: cfg.Timestamps,
	}), nil
}
