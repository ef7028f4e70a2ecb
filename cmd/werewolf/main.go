package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/config"
	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/internal/version"
	"github.com/fullmoon-games/werewolf-cli/internal/view"
	"github.com/fullmoon-games/werewolf-cli/pkg/client"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
	"github.com/fullmoon-games/werewolf-cli/pkg/storage"
)

func main() {
	config.ParseArguments()
	config.SetupLogger()
	config.Logger.Info("starting werewolf-cli", zap.String("version", version.Version()))

	ctx, quit := context.WithCancel(context.Background())
	defer quit()

	endpoint, err := transport.WebsocketURL(config.ServerURL())
	if err != nil {
		config.Logger.Error("invalid server url", zap.Error(err))
		os.Exit(1)
	}

	connection := transport.NewConnection(ctx, endpoint, config.Logger)
	credentials := createStorage()

	sess := session.NewSession(
		session.WithLogger(config.Logger),
		session.WithTransport(connection),
		session.WithStorage(credentials),
	)

	projector := game.NewProjector(config.Logger, nil)

	c := client.NewClient(
		client.WithContext(ctx),
		client.WithLogger(config.Logger),
		client.WithTransport(connection),
		client.WithStorage(credentials),
		client.WithSession(sess),
		client.WithProjector(projector),
	)
	defer c.Stop()

	code := view.Run(c, connection)
	os.Exit(code)
}

func createStorage() storage.Service {
	if config.Anonymous() {
		return nil
	}
	return storage.NewLocalStorage("")
}
