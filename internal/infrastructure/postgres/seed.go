package postgres

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

// WriteSeedSQL escribe un script idempotente que inserta o actualiza bodegas y productos.
func WriteSeedSQL(w io.Writer, products []*entity.Product, warehouses []*entity.Warehouse) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "-- Catálogo inicial generado por inventoryctl seed")
	fmt.Fprintln(bw, "BEGIN;")
	for _, wh := range warehouses {
		fmt.Fprintf(bw,
			"INSERT INTO warehouses (id, name) VALUES (%s, %s) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n",
			quote(wh.ID), quote(wh.Name))
	}
	for _, p := range products {
		fmt.Fprintf(bw,
			"INSERT INTO products (id, name, article, stock, status) VALUES (%s, %s, %s, %d, %s) "+
				"ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, article = EXCLUDED.article, "+
				"stock = EXCLUDED.stock, status = EXCLUDED.status;\n",
			quote(p.ID), quote(p.Name), quote(p.Article), p.Stock, quote(p.Status))
	}
	fmt.Fprintln(bw, "COMMIT;")
	return bw.Flush()
}

// quote literal SQL con comillas simples escapadas.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
