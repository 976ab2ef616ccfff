// Package commands implements the fetch_input and init_day commands.
package commands

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aocday/internal/fetch"
	"github.com/NielsdaWheelz/aocday/internal/logging"
)

// InputFetcher downloads one puzzle input into w.
// *fetch.Client is the production implementation.
type InputFetcher interface {
	FetchInput(ctx context.Context, coord fetch.Coordinate, credential string, w io.Writer) (fetch.Result, error)
}

// FetchOpts holds options for the fetch_input command.
type FetchOpts struct {
	Coord fetch.Coordinate
}

// Fetch implements `fetch_input <year> <day>`.
// Reads the session from stdin and streams the response body to stdout.
func Fetch(ctx context.Context, fetcher InputFetcher, opts FetchOpts, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	logger = logging.OrNop(logger)

	credential, err := fetch.ReadCredential(stdin)
	if err != nil {
		return err
	}
	if credential == "" {
		logger.Warn("empty session on stdin; the request will not be authenticated")
	}

	_, err = fetcher.FetchInput(ctx, opts.Coord, credential, stdout)
	return err
}
