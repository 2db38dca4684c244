// Command runepick finds Unicode characters by name and saves favourites
// under short aliases.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	configfile "github.com/custodia-labs/runepick/internal/adapters/driven/config/file"
	storagefile "github.com/custodia-labs/runepick/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/runepick/internal/adapters/driving/cli"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
	"github.com/custodia-labs/runepick/internal/core/services"
	"github.com/custodia-labs/runepick/internal/unidata"
)

// storeFile is the alias store name inside the configuration directory.
const storeFile = "store.toml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	names, err := unidata.Open()
	if err != nil {
		return fmt.Errorf("load character names: %w", err)
	}
	defer names.Close()

	svc, err := wire(names, "")
	if err != nil {
		return err
	}
	cli.SetServices(svc)
	return cli.Execute(ctx)
}

// wire builds the services over index, reading configuration from
// configDir (the default location when empty).
func wire(index driven.NameIndex, configDir string) (cli.Services, error) {
	config, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, fmt.Errorf("load config: %w", err)
	}
	settings := services.NewSettingsService(config)

	current, err := settings.Get()
	if err != nil {
		return cli.Services{}, err
	}
	storePath := current.Store.Path
	if storePath == "" {
		storePath = filepath.Join(filepath.Dir(config.Path()), storeFile)
	}

	return cli.Services{
		Search:    services.NewSearchService(index),
		Codepoint: services.NewCodepointService(),
		Aliases:   services.NewAliasService(storagefile.NewAliasStore(storePath)),
		Settings:  settings,
	}, nil
}
