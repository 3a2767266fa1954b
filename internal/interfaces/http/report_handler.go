package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster-api/internal/application/dto"
	appinventory "github.com/tu-usuario/stockmaster-api/internal/application/inventory"
)

// ReportHandler genera reportes descargables (protegido).
type ReportHandler struct {
	lowStock *appinventory.LowStockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(lowStock *appinventory.LowStockReportUseCase) *ReportHandler {
	return &ReportHandler{lowStock: lowStock}
}

// LowStockPDF godoc
// @Summary      Reporte de reposición en PDF
// @Description  Productos en o bajo su umbral de reposición, con cantidad sugerida de pedido.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.lowStock.GeneratePDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low-stock-report.pdf"`)
	return c.Send(pdfBytes)
}
