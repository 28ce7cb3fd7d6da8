package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. Roster service
// and storage tests pass it in so save/load logging stays out of test
// output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
