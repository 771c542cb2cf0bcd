package impl

import (
	"io"
	"log/slog"
	"time"

	"maison/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(statsRefreshDelay time.Duration) *config.Config {
	return &config.Config{
		Dashboard: &config.DashboardConfig{
			StatsRefreshDelay: statsRefreshDelay,
		},
	}
}
