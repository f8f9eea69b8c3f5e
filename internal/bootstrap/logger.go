package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/config"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// SetupLogger initializes the application logger writing to stdout and a
// timestamped session file. Returns the log file handle, which the caller
// must close.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, cfg.Version, cfg.Environment,
		devEnvironments[cfg.Environment])
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingArena,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"storage", cfg.StorageBackend,
		"leaderboard", cfg.LeaderboardBackend,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	// session_<timestamp>.log sorts chronologically by name
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
