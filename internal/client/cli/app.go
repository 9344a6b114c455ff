// Package cli implements the interactive terminal client: a small REPL over
// the gRPC API for wallet operations and the challenge lifecycle.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/challengepool/internal/client/client"
	"github.com/dmitrijs2005/challengepool/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	userName string
	loggedIn bool
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewChallengePoolClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}
