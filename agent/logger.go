// Package agent implements the Agent/Realm execution-context owner spec §6
// names as this core's embedding API: the heap, the intrinsics/realm table,
// host hooks, and the glue (PrimitivePrototypes, GC triggers) the reference
// and exotic packages need but do not own themselves.
package agent

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the package-level logger, discarding all output until Init attaches
// a real handler — mirrored directly from the teacher's
// cmd/hiveexplorer/logger package, generalized from a TUI's session log to
// an embedded runtime's GC/realm/module lifecycle log.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "corevm-"
	logSuffix     = ".log"
	retentionDays = 30
)

// LogOptions configures InitLogging. The zero value disables logging entirely.
type LogOptions struct {
	Enabled bool
	LogDir  string
	Level   slog.Level
}

// InitLogging attaches L to a JSON-handler log file under opts.LogDir (or
// ~/.corevm/logs by default), pruning files older than retentionDays the
// same way the teacher's logger.Init does for its own TUI session logs.
func InitLogging(opts LogOptions) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".corevm", "logs")
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}
	cleanOldLogs(logDir)

	filename := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

func cleanOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}
