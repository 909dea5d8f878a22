package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/catalogcsv"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-ops/pkg/jwt"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "aplica o revierte el esquema PostgreSQL",
		Subcommands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "aplica todas las migraciones pendientes",
				Action: func(c *cli.Context) error { return runMigrate(false, 0) },
			},
			{
				Name:  "down",
				Usage: "revierte migraciones",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "cantidad de migraciones a revertir (0 = todas)"},
				},
				Action: func(c *cli.Context) error { return runMigrate(true, c.Int("steps")) },
			},
		},
	}
}

func runMigrate(down bool, steps int) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()

	if down {
		err = m.Down(steps)
	} else {
		err = m.Up()
	}
	if err != nil {
		return err
	}
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
	return nil
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "emite un token de operador para desarrollo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Required: true, Usage: "id del operador"},
			&cli.StringFlag{Name: "role", Value: jwt.RoleOperator, Usage: "admin | operator | viewer"},
			&cli.DurationFlag{Name: "ttl", Usage: "vigencia (por defecto JWT_EXPIRATION_MINUTES)"},
		},
		Action: func(c *cli.Context) error {
			role := c.String("role")
			if !jwt.IsValidRole(role) {
				return fmt.Errorf("rol %q desconocido", role)
			}
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			ttl := c.Duration("ttl")
			if ttl <= 0 {
				ttl = cfg.JWT.TTL()
			}
			token, err := jwt.Generate(cfg.JWT.Secret, cfg.JWT.Issuer, c.String("user"), role, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, token)
			return err
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "genera SQL de carga a partir de un catálogo CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "csv", Required: true, Usage: "archivo con columnas id,name,article,stock[,status]"},
			&cli.StringFlag{Name: "charset", Usage: "codificación del CSV (utf-8, windows-1252, ...)"},
			&cli.StringFlag{Name: "out", Usage: "archivo SQL de salida (por defecto stdout)"},
		},
		Action: func(c *cli.Context) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			in, err := os.Open(c.String("csv"))
			if err != nil {
				return err
			}
			defer in.Close()

			charset := c.String("charset")
			if charset == "" {
				charset = cfg.Store.CatalogCharset
			}
			products, err := catalogcsv.Read(in, charset)
			if err != nil {
				return err
			}
			warehouses := make([]*entity.Warehouse, 0, len(cfg.Store.Warehouses))
			for _, w := range cfg.Store.Warehouses {
				warehouses = append(warehouses, &entity.Warehouse{ID: w.ID, Name: w.Name})
			}

			var out io.Writer = c.App.Writer
			if path := c.String("out"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			bw := bufio.NewWriter(out)
			if err := postgres.WriteSeedSQL(bw, products, warehouses); err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return err
			}
			log.Info().
				Int("products", len(products)).
				Int("warehouses", len(warehouses)).
				Msg("seed generado")
			return nil
		},
	}
}
