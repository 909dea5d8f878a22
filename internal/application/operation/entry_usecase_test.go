package operation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/application/operation"
	"github.com/jhoicas/inventory-ops/internal/domain"
	"github.com/jhoicas/inventory-ops/internal/domain/entity"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/memory"
)

const owner = "user-1"

type recordingDocuments struct {
	last operation.OperationSummary
	err  error
}

func (d *recordingDocuments) GenerateOperationPDF(_ context.Context, s operation.OperationSummary) ([]byte, error) {
	d.last = s
	if d.err != nil {
		return nil, d.err
	}
	return []byte("%PDF-1.4"), nil
}

type fixture struct {
	uc        *operation.EntryUseCase
	products  *memory.ProductRepo
	packaging *memory.PackagingOptionRepo
	history   *memory.OperationHistoryRepo
	documents *recordingDocuments
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{
		products: memory.NewProductRepository(
			&entity.Product{ID: "p1", Name: "Dəftər", Article: "A-1", Stock: 100, Status: entity.ProductStatusActive},
			&entity.Product{ID: "p2", Name: "Qələm", Article: "B-2", Stock: 5, Status: entity.ProductStatusActive},
		),
		packaging: memory.NewPackagingOptionRepository("50+kənar", "10(qutu)"),
		history:   memory.NewOperationHistoryRepository(),
		documents: &recordingDocuments{},
		now:       time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
	}
	warehouses := memory.NewWarehouseRepository(
		&entity.Warehouse{ID: "w1", Name: "Anbar 1"},
		&entity.Warehouse{ID: "w2", Name: "Anbar 2"},
	)
	fx.uc = operation.NewEntryUseCase(
		memory.NewDraftStore(),
		fx.products,
		warehouses,
		fx.packaging,
		fx.history,
		fx.documents,
		operation.EntryConfig{FallbackWarehouse: "Anbar 1"},
		zerolog.Nop(),
	).WithClock(func() time.Time { return fx.now })
	return fx
}

// addProduct captura un producto con una línea de empaque y lo agrega a la lista.
func (fx *fixture) addProduct(t *testing.T, productID, packaging, count string) {
	t.Helper()
	ctx := context.Background()
	_, err := fx.uc.UpdateDraft(ctx, owner, dto.UpdateDraftRequest{ProductID: &productID})
	require.NoError(t, err)
	res, err := fx.uc.AddPackagingLine(ctx, owner, dto.AddPackagingLineRequest{Type: packaging, Count: dto.CountText(count)})
	require.NoError(t, err)
	require.True(t, res.Accepted)
	res, err = fx.uc.AddProductToList(ctx, owner)
	require.NoError(t, err)
	require.True(t, res.Accepted)
}

func TestEntryUseCase_SaveEmitsOneRecordPerProduct(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeIncoming)
	require.NoError(t, err)
	wh := "w2"
	batch := "lote-9"
	_, err = fx.uc.UpdateDraft(ctx, owner, dto.UpdateDraftRequest{WarehouseID: &wh, BatchName: &batch})
	require.NoError(t, err)
	fx.addProduct(t, "p1", "50+kənar", "3")
	fx.addProduct(t, "p2", "10(qutu)", "1")

	res, err := fx.uc.Save(ctx, owner, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Saved)
	assert.Zero(t, res.Skipped)
	assert.NotEmpty(t, res.TransactionID)
	require.NotNil(t, res.Notification)
	assert.Equal(t, dto.NotificationDefault, res.Notification.Variant)

	records, err := fx.history.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// El historial devuelve primero el último agregado.
	assert.Equal(t, "Qələm", records[0].ProductName)
	assert.Equal(t, 10, records[0].Quantity)
	assert.Equal(t, "Dəftər", records[1].ProductName)
	assert.Equal(t, 150, records[1].Quantity)
	for _, r := range records {
		assert.Equal(t, entity.OperationTypeIncoming, r.Type)
		assert.Equal(t, "Anbar 2", r.Warehouse)
		assert.Equal(t, "lote-9", r.BatchName)
		assert.Equal(t, res.TransactionID, r.TransactionID)
		assert.Equal(t, fx.now, r.Timestamp)
	}

	draft, err := fx.uc.Draft(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, draft.OperationType)
	assert.Empty(t, draft.SelectedProducts)
	assert.False(t, draft.CanSave)
}

func TestEntryUseCase_SaveUsesFallbackWarehouse(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	_, err := fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeSale)
	require.NoError(t, err)
	fx.addProduct(t, "p1", "50", "1")

	_, err = fx.uc.Save(ctx, owner, owner)
	require.NoError(t, err)

	records, err := fx.history.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Anbar 1", records[0].Warehouse)
}

func TestEntryUseCase_SaveKeepsUnknownWarehouseID(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	_, err := fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeIncoming)
	require.NoError(t, err)
	wh := "anbar-x"
	_, err = fx.uc.UpdateDraft(ctx, owner, dto.UpdateDraftRequest{WarehouseID: &wh})
	require.NoError(t, err)
	fx.addProduct(t, "p1", "50", "1")

	_, err = fx.uc.Save(ctx, owner, owner)
	require.NoError(t, err)
	records, _ := fx.history.ListRecent(ctx, 0)
	require.Len(t, records, 1)
	assert.Equal(t, "anbar-x", records[0].Warehouse)
}

func TestEntryUseCase_SaveIncomplete(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	// Sin tipo.
	fx.addProduct(t, "p1", "50", "1")
	res, err := fx.uc.Save(ctx, owner, owner)
	assert.ErrorIs(t, err, domain.ErrIncompleteOperation)
	require.NotNil(t, res)
	require.NotNil(t, res.Notification)
	assert.Equal(t, dto.NotificationDestructive, res.Notification.Variant)
	assert.Zero(t, fx.history.Len())

	// Con tipo pero sin productos.
	_, err = fx.uc.Reset(ctx, owner)
	require.NoError(t, err)
	_, err = fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeSale)
	require.NoError(t, err)
	_, err = fx.uc.Save(ctx, owner, owner)
	assert.ErrorIs(t, err, domain.ErrIncompleteOperation)
	assert.Zero(t, fx.history.Len())

	draft, err := fx.uc.Draft(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.OperationTypeSale, draft.OperationType, "el borrador se conserva")
}

func TestEntryUseCase_SaveUnknownType(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	_, err := fx.uc.SelectOperationType(ctx, owner, "regalo")
	require.NoError(t, err)
	fx.addProduct(t, "p1", "50", "1")

	res, err := fx.uc.Save(ctx, owner, owner)
	assert.ErrorIs(t, err, domain.ErrUnknownOperationType)
	require.NotNil(t, res.Notification)
	assert.Zero(t, fx.history.Len())
}

func TestEntryUseCase_SaveSkipsVanishedProduct(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	_, err := fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeOutgoing)
	require.NoError(t, err)
	fx.addProduct(t, "p1", "50", "1")
	fx.addProduct(t, "p2", "10", "2")
	fx.products.Remove("p1")

	res, err := fx.uc.Save(ctx, owner, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Saved)
	assert.Equal(t, 1, res.Skipped)

	records, _ := fx.history.ListRecent(ctx, 0)
	require.Len(t, records, 1)
	assert.Equal(t, "Qələm", records[0].ProductName)
	assert.Equal(t, 20, records[0].Quantity)
}

func TestEntryUseCase_SavePartialFailureKeepsPendingEntries(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	boom := errors.New("historial no disponible")
	fx.history.FailAfter = 1
	fx.history.FailErr = boom

	_, err := fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeSale)
	require.NoError(t, err)
	fx.addProduct(t, "p1", "50", "1")
	fx.addProduct(t, "p2", "10", "1")

	res, err := fx.uc.Save(ctx, owner, owner)
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Saved)
	assert.NotEmpty(t, res.TransactionID)
	assert.Contains(t, res.Error, boom.Error())
	require.NotNil(t, res.Notification)
	assert.Equal(t, dto.NotificationDestructive, res.Notification.Variant)
	assert.Equal(t, 1, fx.history.Len())

	// Solo queda el producto que no se escribió.
	draft, err := fx.uc.Draft(ctx, owner)
	require.NoError(t, err)
	require.Len(t, draft.SelectedProducts, 1)
	assert.Equal(t, "p2", draft.SelectedProducts[0].ProductID)
	assert.Equal(t, entity.OperationTypeSale, draft.OperationType)

	// El reintento escribe solo lo pendiente.
	fx.history.FailAfter = 0
	res, err = fx.uc.Save(ctx, owner, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Saved)
	assert.Empty(t, res.Error)

	records, err := fx.history.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Qələm", records[0].ProductName)
	assert.Equal(t, "Dəftər", records[1].ProductName)
}

func TestEntryUseCase_AddPackagingLineUsesCurrentType(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	typ := "50+kənar"
	_, err := fx.uc.UpdateDraft(ctx, owner, dto.UpdateDraftRequest{PackagingType: &typ})
	require.NoError(t, err)

	res, err := fx.uc.AddPackagingLine(ctx, owner, dto.AddPackagingLineRequest{Count: "2"})
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 100, res.Draft.CurrentQuantity)
	assert.Empty(t, res.Draft.CurrentPackagingType)

	res, err = fx.uc.AddPackagingLine(ctx, owner, dto.AddPackagingLineRequest{Count: "2"})
	require.NoError(t, err)
	assert.False(t, res.Accepted, "sin etiqueta en captura")
	assert.Len(t, res.Draft.CurrentPackaging, 1)
}

func TestEntryUseCase_AddProductToListRejected(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	res, err := fx.uc.AddProductToList(ctx, owner)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Empty(t, res.Draft.SelectedProducts)
}

func TestEntryUseCase_AddCustomPackagingOption(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	res, err := fx.uc.AddCustomPackagingOption(ctx, owner, "  25(paket)  ")
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "25(paket)", res.Draft.CurrentPackagingType)

	labels, err := fx.packaging.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"50+kənar", "10(qutu)", "25(paket)"}, labels)

	for _, label := range []string{"", "   ", "50+kənar"} {
		res, err = fx.uc.AddCustomPackagingOption(ctx, owner, label)
		require.NoError(t, err)
		assert.False(t, res.Accepted, label)
	}
	labels, _ = fx.packaging.List(ctx)
	assert.Len(t, labels, 3)
}

func TestEntryUseCase_DraftTotals(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	fx.addProduct(t, "p1", "50+kənar", "3")
	fx.addProduct(t, "p2", "10(qutu)", "1")

	draft, err := fx.uc.Draft(ctx, owner)
	require.NoError(t, err)
	require.Len(t, draft.SelectedProducts, 2)
	assert.Equal(t, "Dəftər (A-1)", draft.SelectedProducts[0].ProductName)
	assert.Equal(t, 150, draft.SelectedProducts[0].Quantity)
	assert.Equal(t, 160, draft.TotalQuantity)

	draft, err = fx.uc.RemoveProduct(ctx, owner, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, draft.TotalQuantity)

	draft, err = fx.uc.RemoveProduct(ctx, owner, 5)
	require.NoError(t, err)
	assert.Len(t, draft.SelectedProducts, 1)
}

func TestEntryUseCase_DraftsArePerOwner(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	_, err := fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeSale)
	require.NoError(t, err)

	other, err := fx.uc.Draft(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other.OperationType)
}

func TestEntryUseCase_Document(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.uc.Document(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrIncompleteOperation)

	_, err = fx.uc.SelectOperationType(ctx, owner, entity.OperationTypeIncoming)
	require.NoError(t, err)
	fx.addProduct(t, "p1", "50+kənar", "3")
	fx.addProduct(t, "p2", "10(qutu)", "1")

	doc, err := fx.uc.Document(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Operación incoming", doc.Summary.Title)
	assert.Equal(t, "05.03.2024", doc.Summary.Date)
	assert.Equal(t, "Dəftər (A-1), Qələm (B-2)", doc.Summary.ProductNames)
	assert.Equal(t, 160, doc.Summary.Quantity)
	assert.Equal(t, "Operación_incoming_1709629200000.pdf", doc.Filename)
	assert.Equal(t, doc.Summary, fx.documents.last)
	assert.NotEmpty(t, doc.Bytes)

	// Generar el comprobante no modifica el borrador.
	draft, err := fx.uc.Draft(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, draft.SelectedProducts, 2)
}

func TestEntryUseCase_DocumentGeneratorError(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	fx.documents.err = errors.New("sin fuentes")
	fx.addProduct(t, "p1", "50", "1")

	_, err := fx.uc.Document(ctx, owner)
	assert.ErrorIs(t, err, fx.documents.err)
}

func TestEntryUseCase_DocumentOmitsVanishedProductName(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	fx.addProduct(t, "p1", "50", "1")
	fx.addProduct(t, "p2", "10", "2")
	fx.products.Remove("p1")

	doc, err := fx.uc.Document(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Qələm (B-2)", doc.Summary.ProductNames)
	assert.Equal(t, 70, doc.Summary.Quantity)
}
