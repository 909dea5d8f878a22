package http

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/application/operation"
	"github.com/jhoicas/inventory-ops/internal/application/usecase"
)

// OperationHandler expone el borrador de operación del operador autenticado y el historial.
// Cada operador (sub del JWT) tiene un único borrador.
type OperationHandler struct {
	entry   *operation.EntryUseCase
	history *usecase.HistoryUseCase
}

// NewOperationHandler construye el handler.
func NewOperationHandler(entry *operation.EntryUseCase, history *usecase.HistoryUseCase) *OperationHandler {
	return &OperationHandler{entry: entry, history: history}
}

// GetDraft godoc
// @Summary      Borrador actual
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/operations/draft [get]
func (h *OperationHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.entry.Draft(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// SelectType godoc
// @Summary      Elegir tipo de operación
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectOperationTypeRequest  true  "Tipo"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/operations/draft/type [put]
func (h *OperationHandler) SelectType(c *fiber.Ctx) error {
	var in dto.SelectOperationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.entry.SelectOperationType(c.UserContext(), GetUserID(c), in.Type)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// UpdateDraft godoc
// @Summary      Actualizar bodegas, lote, notas, producto o etiqueta en captura
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateDraftRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/operations/draft [patch]
func (h *OperationHandler) UpdateDraft(c *fiber.Ctx) error {
	var in dto.UpdateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.entry.UpdateDraft(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// AddPackagingLine godoc
// @Summary      Agregar línea de empaque
// @Description  accepted=false si falta la etiqueta o la cantidad no es un entero positivo.
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPackagingLineRequest  true  "Etiqueta y cantidad"
// @Success      200   {object}  dto.DraftMutationResponse
// @Router       /api/operations/draft/packaging-lines [post]
func (h *OperationHandler) AddPackagingLine(c *fiber.Ctx) error {
	var in dto.AddPackagingLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.entry.AddPackagingLine(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// RemovePackagingLine godoc
// @Summary      Quitar línea de empaque
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        index  path  int  true  "Posición (desde 0)"
// @Success      200    {object}  dto.DraftResponse
// @Router       /api/operations/draft/packaging-lines/{index} [delete]
func (h *OperationHandler) RemovePackagingLine(c *fiber.Ctx) error {
	index, err := indexParam(c)
	if err != nil {
		return badRequest(c, "INVALID_INDEX", "index debe ser un entero")
	}
	out, err := h.entry.RemovePackagingLine(c.UserContext(), GetUserID(c), index)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// AddPackagingOption godoc
// @Summary      Registrar etiqueta de empaque personalizada
// @Description  accepted=false si la etiqueta está vacía o ya existe.
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPackagingOptionRequest  true  "Etiqueta"
// @Success      200   {object}  dto.DraftMutationResponse
// @Router       /api/operations/draft/packaging-options [post]
func (h *OperationHandler) AddPackagingOption(c *fiber.Ctx) error {
	var in dto.AddPackagingOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.entry.AddCustomPackagingOption(c.UserContext(), GetUserID(c), in.Label)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// AddProduct godoc
// @Summary      Agregar el producto en captura a la operación
// @Description  accepted=false si no hay producto elegido o no tiene líneas de empaque.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftMutationResponse
// @Router       /api/operations/draft/products [post]
func (h *OperationHandler) AddProduct(c *fiber.Ctx) error {
	out, err := h.entry.AddProductToList(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// RemoveProduct godoc
// @Summary      Quitar producto agregado
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        index  path  int  true  "Posición (desde 0)"
// @Success      200    {object}  dto.DraftResponse
// @Router       /api/operations/draft/products/{index} [delete]
func (h *OperationHandler) RemoveProduct(c *fiber.Ctx) error {
	index, err := indexParam(c)
	if err != nil {
		return badRequest(c, "INVALID_INDEX", "index debe ser un entero")
	}
	out, err := h.entry.RemoveProduct(c.UserContext(), GetUserID(c), index)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar operación
// @Description  Emite un registro de historial por producto y limpia el borrador.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SaveOperationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.SaveOperationResponse  "guardado interrumpido; saved indica los registros escritos"
// @Router       /api/operations/draft/save [post]
func (h *OperationHandler) Save(c *fiber.Ctx) error {
	userID := GetUserID(c)
	out, err := h.entry.Save(c.UserContext(), userID, userID)
	if err != nil {
		if out != nil && out.TransactionID != "" {
			// Guardado interrumpido: se informa cuántos registros quedaron escritos.
			status, _ := statusFor(err)
			return c.Status(status).JSON(out)
		}
		var n *dto.Notification
		if out != nil {
			n = out.Notification
		}
		return writeError(c, err, n)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar comprobante PDF
// @Tags         operations
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/operations/draft/pdf [get]
func (h *OperationHandler) ExportPDF(c *fiber.Ctx) error {
	return h.sendDocument(c, "attachment")
}

// PrintPDF godoc
// @Summary      Ver comprobante PDF para imprimir
// @Tags         operations
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/operations/draft/print [get]
func (h *OperationHandler) PrintPDF(c *fiber.Ctx) error {
	return h.sendDocument(c, "inline")
}

func (h *OperationHandler) sendDocument(c *fiber.Ctx, disposition string) error {
	doc, err := h.entry.Document(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err, nil)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, contentDisposition(disposition, doc.Filename))
	return c.Send(doc.Bytes)
}

// contentDisposition incluye un nombre ASCII de respaldo y el nombre UTF-8 codificado (RFC 6266).
func contentDisposition(disposition, filename string) string {
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, filename)
	return disposition + `; filename="` + ascii + `"; filename*=UTF-8''` + url.PathEscape(filename)
}

// ResetDraft godoc
// @Summary      Descartar borrador
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/operations/draft [delete]
func (h *OperationHandler) ResetDraft(c *fiber.Ctx) error {
	out, err := h.entry.Reset(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de operaciones
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de registros"
// @Success      200    {array}  dto.OperationRecordResponse
// @Router       /api/operations/history [get]
func (h *OperationHandler) History(c *fiber.Ctx) error {
	out, err := h.history.List(c.UserContext(), c.QueryInt("limit", 50))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

func indexParam(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("index"))
}
