// Package operation contiene el registro guiado de operaciones de inventario: el formulario
// transitorio por operador y los casos de uso que lo conectan con los colaboradores.
package operation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/domain"
	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	domop "github.com/jhoicas/inventory-ops/internal/domain/operation"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

// EntryConfig parámetros del registro de operaciones.
type EntryConfig struct {
	FallbackWarehouse string // etiqueta usada cuando no se eligió bodega
	DateLayout        string // formato de fecha del comprobante
}

// EntryUseCase orquesta el borrador de operación de cada operador.
type EntryUseCase struct {
	drafts        DraftStore
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	packagingRepo repository.PackagingOptionRepository
	historyRepo   repository.OperationHistoryRepository
	documents     OperationDocumentGenerator
	cfg           EntryConfig
	log           zerolog.Logger
	now           func() time.Time
}

// NewEntryUseCase construye el caso de uso.
func NewEntryUseCase(
	drafts DraftStore,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	packagingRepo repository.PackagingOptionRepository,
	historyRepo repository.OperationHistoryRepository,
	documents OperationDocumentGenerator,
	cfg EntryConfig,
	log zerolog.Logger,
) *EntryUseCase {
	if cfg.DateLayout == "" {
		cfg.DateLayout = "02.01.2006"
	}
	return &EntryUseCase{
		drafts:        drafts,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		packagingRepo: packagingRepo,
		historyRepo:   historyRepo,
		documents:     documents,
		cfg:           cfg,
		log:           log,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *EntryUseCase) WithClock(now func() time.Time) *EntryUseCase {
	uc.now = now
	return uc
}

// Draft devuelve el borrador actual del operador.
func (uc *EntryUseCase) Draft(ctx context.Context, owner string) (*dto.DraftResponse, error) {
	return uc.update(ctx, owner, func(*Form) {})
}

// SelectOperationType fija el tipo de operación del borrador.
func (uc *EntryUseCase) SelectOperationType(ctx context.Context, owner, t string) (*dto.DraftResponse, error) {
	return uc.update(ctx, owner, func(f *Form) { f.SelectOperationType(t) })
}

// UpdateDraft aplica los campos presentes en in.
func (uc *EntryUseCase) UpdateDraft(ctx context.Context, owner string, in dto.UpdateDraftRequest) (*dto.DraftResponse, error) {
	return uc.update(ctx, owner, func(f *Form) {
		if in.WarehouseID != nil {
			f.SetWarehouse(*in.WarehouseID)
		}
		if in.DestinationWarehouseID != nil {
			f.SetDestinationWarehouse(*in.DestinationWarehouseID)
		}
		if in.BatchName != nil {
			f.SetBatchName(*in.BatchName)
		}
		if in.Notes != nil {
			f.SetNotes(*in.Notes)
		}
		if in.ProductID != nil {
			f.SelectProduct(*in.ProductID)
		}
		if in.PackagingType != nil {
			f.SelectPackagingType(*in.PackagingType)
		}
	})
}

// AddPackagingLine agrega una línea de empaque al producto en captura. Si in.Type está vacío se usa
// la etiqueta en captura del borrador.
func (uc *EntryUseCase) AddPackagingLine(ctx context.Context, owner string, in dto.AddPackagingLineRequest) (*dto.DraftMutationResponse, error) {
	return uc.mutate(ctx, owner, func(_ context.Context, f *Form) (bool, error) {
		typ := in.Type
		if typ == "" {
			typ = f.CurrentPackagingType()
		}
		return f.AddPackagingLine(typ, string(in.Count)), nil
	})
}

// RemovePackagingLine quita una línea de empaque por posición.
func (uc *EntryUseCase) RemovePackagingLine(ctx context.Context, owner string, index int) (*dto.DraftResponse, error) {
	return uc.update(ctx, owner, func(f *Form) { f.RemovePackagingLine(index) })
}

// AddCustomPackagingOption registra una etiqueta nueva en el colaborador de empaques y la deja
// seleccionada. Se ignora si la etiqueta recortada está vacía o ya existe.
func (uc *EntryUseCase) AddCustomPackagingOption(ctx context.Context, owner, label string) (*dto.DraftMutationResponse, error) {
	label = strings.TrimSpace(label)
	return uc.mutate(ctx, owner, func(ctx context.Context, f *Form) (bool, error) {
		if label == "" {
			return false, nil
		}
		existing, err := uc.packagingRepo.List(ctx)
		if err != nil {
			return false, fmt.Errorf("listar empaques: %w", err)
		}
		for _, o := range existing {
			if o == label {
				return false, nil
			}
		}
		if err := uc.packagingRepo.Add(ctx, label); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return false, nil
			}
			return false, fmt.Errorf("agregar empaque: %w", err)
		}
		f.SelectPackagingType(label)
		return true, nil
	})
}

// AddProductToList agrega el producto en captura con su desglose de empaque.
func (uc *EntryUseCase) AddProductToList(ctx context.Context, owner string) (*dto.DraftMutationResponse, error) {
	return uc.mutate(ctx, owner, func(_ context.Context, f *Form) (bool, error) {
		return f.AddProductToList(), nil
	})
}

// RemoveProduct quita un producto agregado por posición.
func (uc *EntryUseCase) RemoveProduct(ctx context.Context, owner string, index int) (*dto.DraftResponse, error) {
	return uc.update(ctx, owner, func(f *Form) { f.RemoveProduct(index) })
}

// Reset limpia el borrador del operador.
func (uc *EntryUseCase) Reset(ctx context.Context, owner string) (*dto.DraftResponse, error) {
	return uc.update(ctx, owner, func(f *Form) { f.Reset() })
}

// Save emite un registro de historial por cada producto agregado y limpia el borrador.
//
// Retorna:
//   - domain.ErrIncompleteOperation si falta el tipo o no hay productos (no se escribe nada).
//   - domain.ErrUnknownOperationType si el tipo no pertenece a la enumeración.
//   - el error del historial si un registro falla; los anteriores quedan guardados y salen del
//     borrador, que conserva solo los pendientes. resp.Saved indica cuántos se escribieron.
func (uc *EntryUseCase) Save(ctx context.Context, owner, userID string) (*dto.SaveOperationResponse, error) {
	var resp *dto.SaveOperationResponse
	err := uc.drafts.With(ctx, owner, func(f *Form) error {
		if !f.CanSave() {
			resp = &dto.SaveOperationResponse{Notification: IncompleteNotification()}
			return domain.ErrIncompleteOperation
		}
		if !entity.IsValidOperationType(f.operationType) {
			resp = &dto.SaveOperationResponse{Notification: &dto.Notification{
				Title:       "Tipo de operación inválido",
				Description: fmt.Sprintf("%q no es un tipo de operación reconocido", f.operationType),
				Variant:     dto.NotificationDestructive,
			}}
			return domain.ErrUnknownOperationType
		}

		warehouse, err := uc.warehouseName(ctx, f.warehouseID, uc.cfg.FallbackWarehouse)
		if err != nil {
			return err
		}
		destination, err := uc.warehouseName(ctx, f.destinationWarehouseID, "")
		if err != nil {
			return err
		}

		resp = &dto.SaveOperationResponse{TransactionID: uuid.New().String()}
		now := uc.now()
		for i, e := range f.selectedProducts {
			product, err := uc.productRepo.GetByID(ctx, e.ProductID)
			if err != nil {
				return uc.interruptSave(f, i, resp, fmt.Errorf("guardar operación: obtener producto: %w", err))
			}
			if product == nil {
				uc.log.Warn().
					Str("owner", owner).
					Str("product_id", e.ProductID).
					Msg("producto inexistente omitido al guardar operación")
				resp.Skipped++
				continue
			}
			rec := &entity.OperationRecord{
				ID:                   uuid.New().String(),
				TransactionID:        resp.TransactionID,
				Type:                 f.operationType,
				ProductName:          product.Name,
				Quantity:             domop.QuantityForLines(e.Packaging),
				Warehouse:            warehouse,
				DestinationWarehouse: destination,
				BatchName:            f.batchName,
				Notes:                f.notes,
				Timestamp:            now,
				CreatedBy:            userID,
			}
			if err := uc.historyRepo.Append(ctx, rec); err != nil {
				return uc.interruptSave(f, i, resp, fmt.Errorf("guardar operación: registro %d de %d: %w", i+1, len(f.selectedProducts), err))
			}
			resp.Saved++
		}

		uc.log.Info().
			Str("owner", owner).
			Str("type", f.operationType).
			Str("transaction_id", resp.TransactionID).
			Int("saved", resp.Saved).
			Int("skipped", resp.Skipped).
			Msg("operación guardada")

		resp.Notification = &dto.Notification{
			Title:       "Operación guardada",
			Description: fmt.Sprintf("La operación %s se guardó y se agregó al historial", f.operationType),
			Variant:     dto.NotificationDefault,
		}
		f.Reset()
		return nil
	})
	return resp, err
}

// interruptSave deja en el borrador solo las entradas desde la posición i (las anteriores ya están
// en el historial o se omitieron) y completa resp con el aviso de error.
func (uc *EntryUseCase) interruptSave(f *Form, i int, resp *dto.SaveOperationResponse, err error) error {
	f.selectedProducts = append([]domop.ProductEntry(nil), f.selectedProducts[i:]...)
	uc.log.Error().Err(err).
		Str("transaction_id", resp.TransactionID).
		Int("saved", resp.Saved).
		Int("pending", len(f.selectedProducts)).
		Msg("guardado de operación interrumpido")
	resp.Error = err.Error()
	resp.Notification = &dto.Notification{
		Title:       "Operación guardada parcialmente",
		Description: fmt.Sprintf("Se guardaron %d registros; quedan %d productos pendientes: %v", resp.Saved, len(f.selectedProducts), err),
		Variant:     dto.NotificationDestructive,
	}
	return err
}

// Document comprobante PDF de la operación en curso.
type Document struct {
	Summary  OperationSummary
	Bytes    []byte
	Filename string
}

// Document genera el comprobante con título, fecha, productos y cantidad total.
// Requiere al menos un producto agregado.
func (uc *EntryUseCase) Document(ctx context.Context, owner string) (*Document, error) {
	var summary OperationSummary
	err := uc.drafts.With(ctx, owner, func(f *Form) error {
		if len(f.selectedProducts) == 0 {
			return domain.ErrIncompleteOperation
		}
		s, err := uc.summarize(ctx, f)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	pdf, err := uc.documents.GenerateOperationPDF(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("comprobante: %w", err)
	}
	return &Document{
		Summary:  summary,
		Bytes:    pdf,
		Filename: documentFilename(summary.Title, uc.now()),
	}, nil
}

// IncompleteNotification aviso mostrado al intentar guardar sin tipo o sin productos.
func IncompleteNotification() *dto.Notification {
	return &dto.Notification{
		Title:       "Datos incompletos",
		Description: "Debe elegir el tipo de operación y agregar al menos un producto",
		Variant:     dto.NotificationDestructive,
	}
}

func (uc *EntryUseCase) summarize(ctx context.Context, f *Form) (OperationSummary, error) {
	names := make([]string, 0, len(f.selectedProducts))
	for _, e := range f.selectedProducts {
		name, err := uc.productDisplayName(ctx, e.ProductID)
		if err != nil {
			return OperationSummary{}, err
		}
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return OperationSummary{
		Title:        strings.TrimSpace("Operación " + f.operationType),
		Date:         uc.now().Format(uc.cfg.DateLayout),
		ProductNames: strings.Join(names, ", "),
		Quantity:     domop.QuantityForEntries(f.selectedProducts),
	}, nil
}

// documentFilename: espacios del título → "_", más la marca de tiempo en milisegundos.
func documentFilename(title string, now time.Time) string {
	return strings.Join(strings.Fields(title), "_") + "_" + strconv.FormatInt(now.UnixMilli(), 10) + ".pdf"
}

// warehouseName resuelve el ID elegido al nombre de la bodega. Sin elección devuelve fallback;
// un ID desconocido se conserva tal cual.
func (uc *EntryUseCase) warehouseName(ctx context.Context, id, fallback string) (string, error) {
	if id == "" {
		return fallback, nil
	}
	wh, err := uc.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("obtener bodega: %w", err)
	}
	if wh == nil {
		return id, nil
	}
	return wh.Name, nil
}

// productDisplayName devuelve "Nombre (Artículo)" o "" si el producto ya no existe.
func (uc *EntryUseCase) productDisplayName(ctx context.Context, id string) (string, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil {
		return "", nil
	}
	return p.DisplayName(), nil
}

func (uc *EntryUseCase) update(ctx context.Context, owner string, fn func(f *Form)) (*dto.DraftResponse, error) {
	var out *dto.DraftResponse
	err := uc.drafts.With(ctx, owner, func(f *Form) error {
		fn(f)
		d, err := uc.toDraftResponse(ctx, f.State())
		if err != nil {
			return err
		}
		out = d
		return nil
	})
	return out, err
}

func (uc *EntryUseCase) mutate(ctx context.Context, owner string, fn func(ctx context.Context, f *Form) (bool, error)) (*dto.DraftMutationResponse, error) {
	var out *dto.DraftMutationResponse
	err := uc.drafts.With(ctx, owner, func(f *Form) error {
		accepted, err := fn(ctx, f)
		if err != nil {
			return err
		}
		d, err := uc.toDraftResponse(ctx, f.State())
		if err != nil {
			return err
		}
		out = &dto.DraftMutationResponse{Accepted: accepted, Draft: *d}
		return nil
	})
	return out, err
}

func (uc *EntryUseCase) toDraftResponse(ctx context.Context, s FormState) (*dto.DraftResponse, error) {
	entries := make([]dto.ProductEntryDTO, 0, len(s.SelectedProducts))
	total := 0
	for _, e := range s.SelectedProducts {
		name, err := uc.productDisplayName(ctx, e.ProductID)
		if err != nil {
			return nil, err
		}
		qty := domop.QuantityForLines(e.Packaging)
		total += qty
		entries = append(entries, dto.ProductEntryDTO{
			ProductID:   e.ProductID,
			ProductName: name,
			Packaging:   toLineDTOs(e.Packaging),
			Quantity:    qty,
		})
	}
	return &dto.DraftResponse{
		OperationType:          s.OperationType,
		WarehouseID:            s.WarehouseID,
		DestinationWarehouseID: s.DestinationWarehouseID,
		BatchName:              s.BatchName,
		Notes:                  s.Notes,
		CurrentProductID:       s.CurrentProductID,
		CurrentPackagingType:   s.CurrentPackagingType,
		CurrentPackaging:       toLineDTOs(s.CurrentPackaging),
		CurrentQuantity:        domop.QuantityForLines(s.CurrentPackaging),
		SelectedProducts:       entries,
		TotalQuantity:          total,
		Visibility: dto.VisibilityDTO{
			Warehouse:            s.Visibility.Warehouse,
			BatchName:            s.Visibility.BatchName,
			SourceWarehouse:      s.Visibility.SourceWarehouse,
			DestinationWarehouse: s.Visibility.DestinationWarehouse,
		},
		CanSave: s.OperationType != "" && len(s.SelectedProducts) > 0,
	}, nil
}

func toLineDTOs(lines []domop.PackagingLine) []dto.PackagingLineDTO {
	out := make([]dto.PackagingLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.PackagingLineDTO{Type: l.Type, Count: l.Count, Quantity: domop.LineQuantity(l)})
	}
	return out
}
