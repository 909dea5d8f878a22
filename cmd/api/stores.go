package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/catalogcsv"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-ops/pkg/config"
	"github.com/jhoicas/inventory-ops/pkg/logger"
)

// stores colaboradores elegidos según STORE_DRIVER.
type stores struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	packaging  repository.PackagingOptionRepository
	history    repository.OperationHistoryRepository
	close      func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		return openPostgres(ctx, cfg, log)
	default:
		return openMemory(cfg, log)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	packaging := postgres.NewPackagingOptionRepository(pool)
	if err := packaging.EnsureDefaults(ctx, cfg.Operations.PackagingDefaults); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Msg("colaboradores PostgreSQL listos")
	return &stores{
		products:   postgres.NewProductRepository(pool),
		warehouses: postgres.NewWarehouseRepository(pool),
		packaging:  packaging,
		history:    postgres.NewOperationHistoryRepository(pool),
		close:      pool.Close,
	}, nil
}

func openMemory(cfg *config.Config, log *logger.Logger) (*stores, error) {
	var products []*entity.Product
	if cfg.Store.CatalogCSV != "" {
		f, err := os.Open(cfg.Store.CatalogCSV)
		if err != nil {
			return nil, fmt.Errorf("abrir catálogo: %w", err)
		}
		defer f.Close()
		products, err = catalogcsv.Read(f, cfg.Store.CatalogCharset)
		if err != nil {
			return nil, fmt.Errorf("leer catálogo %s: %w", cfg.Store.CatalogCSV, err)
		}
	}
	warehouses := make([]*entity.Warehouse, 0, len(cfg.Store.Warehouses))
	for _, w := range cfg.Store.Warehouses {
		warehouses = append(warehouses, &entity.Warehouse{ID: w.ID, Name: w.Name})
	}
	log.Info().
		Int("products", len(products)).
		Int("warehouses", len(warehouses)).
		Msg("colaboradores en memoria listos")
	return &stores{
		products:   memory.NewProductRepository(products...),
		warehouses: memory.NewWarehouseRepository(warehouses...),
		packaging:  memory.NewPackagingOptionRepository(cfg.Operations.PackagingDefaults...),
		history:    memory.NewOperationHistoryRepository(),
		close:      func() {},
	}, nil
}
