package http

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/optics-service/internal/app/report/export"
	"github.com/light-bringer/optics-service/internal/app/report/queries/admin_stats"
	"github.com/light-bringer/optics-service/internal/app/report/queries/latest_products"
	"github.com/light-bringer/optics-service/internal/app/report/queries/sales_report"
	"github.com/light-bringer/optics-service/internal/app/report/queries/top_selling"
	"github.com/light-bringer/optics-service/internal/pkg/clock"
)

// ReportHandler serves the dashboards.
type ReportHandler struct {
	adminStats     *admin_stats.Query
	salesReport    *sales_report.Query
	topSelling     *top_selling.Query
	latestProducts *latest_products.Query
	clock          clock.Clock
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(
	adminStats *admin_stats.Query,
	salesReport *sales_report.Query,
	topSelling *top_selling.Query,
	latestProducts *latest_products.Query,
	clk clock.Clock,
) *ReportHandler {
	return &ReportHandler{
		adminStats:     adminStats,
		salesReport:    salesReport,
		topSelling:     topSelling,
		latestProducts: latestProducts,
		clock:          clk,
	}
}

// AdminStats handles GET /admin-stats.
func (h *ReportHandler) AdminStats(c *gin.Context) {
	stats, err := h.adminStats.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch admin stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SalesReport handles GET /sales-report.
func (h *ReportHandler) SalesReport(c *gin.Context) {
	report, err := h.salesReport.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch sales report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportSalesReport handles GET /sales-report/export.
func (h *ReportHandler) ExportSalesReport(c *gin.Context) {
	report, err := h.salesReport.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch sales report")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSalesReport(&buf, report); err != nil {
		log.Printf("failed to render sales report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}

	filename := fmt.Sprintf("sales-report-%s.xlsx", h.clock.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// TopSellingProducts handles GET /top-selling-products.
func (h *ReportHandler) TopSellingProducts(c *gin.Context) {
	products, err := h.topSelling.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch top selling products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// LatestProducts handles GET /latest-products.
func (h *ReportHandler) LatestProducts(c *gin.Context) {
	products, err := h.latestProducts.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch latest products")
		return
	}
	c.JSON(http.StatusOK, products)
}
