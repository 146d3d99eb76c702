package handlers

import (
	"log"

	"inventory/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for inventory reports.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Get("/low-stock", h.HandleLowStockReport)
}

// HandleLowStockReport returns the low-stock report. The threshold query
// parameter is optional and must be a non-negative integer.
func (h *ReportHandler) HandleLowStockReport(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", services.DefaultLowStockThreshold)
	if threshold < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "threshold must be a non-negative integer",
		})
	}

	report, err := h.service.LowStockReport(threshold)
	if err != nil {
		log.Printf("Error building low stock report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build low stock report",
			"error":   err.Error(),
		})
	}
	return c.JSON(report)
}
