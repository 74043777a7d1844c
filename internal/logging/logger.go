// =============================================================================
// Cafeteria Billing - Logging
// =============================================================================
//
// Builds the zap logger used by every component. Log records go to a
// rotated JSON file so they never interleave with the customer dialogue on
// stdout. With --verbose a human-readable console core on stderr is teed in.
//
// =============================================================================

package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/cafeteria-billing/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates the application logger from the configuration.
//
// PARAMETERS:
//   - cfg: The loaded configuration (log file and level).
//   - verbose: Also log to stderr at debug level.
//
// RETURNS:
//   - The logger. Call Sync before the process exits.
//   - An error if the level is unknown or the log directory cannot be created.
func New(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	if dir := filepath.Dir(cfg.LogFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    16,
		MaxBackups: 7,
		MaxAge:     30,
		Compress:   false,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		),
	}

	if verbose {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			zapcore.DebugLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}
