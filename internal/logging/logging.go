// SPDX-License-Identifier: MIT
// Package logging builds the CLI's zap logger from config.Log.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/internal/config"
)

// New returns a production (JSON) or development (console) logger at the
// configured level. Both write to stderr so stdout stays free for reports.
func New(cfg config.Log) (*zap.Logger, error) {
	var zc zap.Config
	switch cfg.Format {
	case config.FormatJSON:
		zc = zap.NewProductionConfig()
	case config.FormatConsole:
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
