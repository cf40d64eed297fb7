package impl

import (
	"io"
	"log/slog"

	"beanwatch/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(perPage int) *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			PerPage: perPage,
		},
	}
}
