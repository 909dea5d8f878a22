package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ops/internal/application/analytics"
	"github.com/jhoicas/inventory-ops/internal/application/dto"
)

// ReportHandler endpoints de reportes (solo lectura).
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetReport devuelve resumen y operaciones recientes.
// GET /api/reports?limit=
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	out, err := h.uc.GetReport(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// GetSummary conteos del catálogo: total, activos, por agotarse (0 < stock < 50), agotados y stock total.
// GET /api/reports/summary
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// RecentOperations operaciones recientes con ícono, color y fecha formateada.
// GET /api/reports/operations?limit=
func (h *ReportHandler) RecentOperations(c *fiber.Ctx) error {
	out, err := h.uc.RecentOperations(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(out)
}

// Export todavía no implementado; responde 501 con el aviso para el operador.
// POST /api/reports/export
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	return notImplemented(c, h.uc.RequestExport())
}

// DateFilter todavía no implementado; responde 501 con el aviso para el operador.
// POST /api/reports/date-filter
func (h *ReportHandler) DateFilter(c *fiber.Ctx) error {
	return notImplemented(c, h.uc.RequestDateFilter())
}

func notImplemented(c *fiber.Ctx, n *dto.Notification) error {
	return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
		Code:         "NOT_IMPLEMENTED",
		Message:      n.Description,
		Notification: n,
	})
}
