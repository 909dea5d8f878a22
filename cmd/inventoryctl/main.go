package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/inventory-ops/pkg/config"
	"github.com/jhoicas/inventory-ops/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "inventoryctl",
		Usage: "tareas de mantenimiento del servicio de operaciones de inventario",
		Commands: []*cli.Command{
			migrateCommand(),
			tokenCommand(),
			seedCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "inventoryctl:", err)
		os.Exit(1)
	}
}

// loadConfig carga la configuración y el logger de consola de la CLI.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{
		Env:     "development",
		Level:   cfg.Log.Level,
		Service: "inventoryctl",
		Output:  os.Stderr,
	})
	return cfg, log, nil
}
