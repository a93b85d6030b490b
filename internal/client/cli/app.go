// Package cli renders the authentication flow as interactive terminal
// screens. All decision logic lives in the flow controller; the screens
// only prompt, display, and forward input.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/bobhenl/trivago-auth-main/internal/client/api"
	"github.com/bobhenl/trivago-auth-main/internal/client/config"
	"github.com/bobhenl/trivago-auth-main/internal/client/flow"
	"github.com/bobhenl/trivago-auth-main/internal/client/session"
	"github.com/bobhenl/trivago-auth-main/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	config *config.Config
	flow   *flow.Controller
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn, // keep the screens readable
	})))

	apiClient, err := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	ctrl := flow.NewController(ctx, apiClient, session.NewMemoryStore(), logger)

	return &App{
		config: c,
		flow:   ctrl,
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}
