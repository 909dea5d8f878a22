// Package catalogcsv lee el catálogo de productos desde CSV (exportaciones de hoja de cálculo).
//
// Columnas esperadas en la cabecera, en cualquier orden: id, name, article, stock, status.
// status es opcional (active por defecto).
package catalogcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventory-ops/internal/domain"
	"github.com/jhoicas/inventory-ops/internal/domain/entity"
)

var requiredColumns = []string{"id", "name", "article", "stock"}

// Decoder devuelve el decodificador para charset ("utf-8", "windows-1252", "iso-8859-9", ...).
// Vacío equivale a UTF-8 y descarta el BOM si existe.
func Decoder(charset string) (*encoding.Decoder, error) {
	if strings.TrimSpace(charset) == "" {
		return unicode.UTF8BOM.NewDecoder(), nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: charset %q", domain.ErrInvalidInput, charset)
	}
	if enc == unicode.UTF8 {
		return unicode.UTF8BOM.NewDecoder(), nil
	}
	return enc.NewDecoder(), nil
}

// Read decodifica r con charset y devuelve los productos en el orden del archivo.
// Los errores de fila indican el número de línea.
func Read(r io.Reader, charset string) ([]*entity.Product, error) {
	dec, err := Decoder(charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: csv vacío", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %q", domain.ErrInvalidInput, c)
		}
	}

	var products []*entity.Product
	seen := make(map[string]int)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		p := &entity.Product{
			ID:      field("id"),
			Name:    field("name"),
			Article: field("article"),
			Status:  strings.ToLower(field("status")),
		}
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("%w: línea %d: id y name son requeridos", domain.ErrInvalidInput, line)
		}
		if prev, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: línea %d: id %q repetido (línea %d)", domain.ErrDuplicate, line, p.ID, prev)
		}
		seen[p.ID] = line

		stock, err := strconv.Atoi(field("stock"))
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("%w: línea %d: stock %q no es un entero no negativo", domain.ErrInvalidInput, line, field("stock"))
		}
		p.Stock = stock

		switch p.Status {
		case "":
			p.Status = entity.ProductStatusActive
		case entity.ProductStatusActive, entity.ProductStatusInactive:
		default:
			return nil, fmt.Errorf("%w: línea %d: status %q", domain.ErrInvalidInput, line, p.Status)
		}
		products = append(products, p)
	}
	return products, nil
}
