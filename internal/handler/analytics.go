package handler

import (
	"net/http"
	"shopease-api/internal/dto"
	"shopease-api/internal/middleware"
	"shopease-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	exportService    service.ExportService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, exportService service.ExportService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		exportService:    exportService,
	}
}

// RecordScan is the public scan-tracking endpoint. It is the sole write path
// feeding scan analytics.
func (h *AnalyticsHandler) RecordScan(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RecordScanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	scan, err := h.analyticsService.RecordScan(ctx, &req, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"scan_id": scan.ID,
	})
}

func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	dashboard, err := h.analyticsService.Dashboard(ctx, middleware.StoreID(c), dateRange(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboard)
}

func (h *AnalyticsHandler) ListScans(c echo.Context) error {
	ctx := c.Request().Context()

	scans, err := h.analyticsService.ListScans(ctx, middleware.StoreID(c), dateRange(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, scans)
}

func (h *AnalyticsHandler) ListSalesData(c echo.Context) error {
	ctx := c.Request().Context()

	rows, err := h.analyticsService.ListSalesData(ctx, middleware.StoreID(c), dateRange(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) CreateSalesData(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SalesDataRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	row, err := h.analyticsService.CreateSalesData(ctx, middleware.StoreID(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, row)
}

// UploadSalesData accepts a spreadsheet of per-day sales rows. Row failures
// come back in the errors list of a 200 response: success means the batch
// ran, not that every row landed.
func (h *AnalyticsHandler) UploadSalesData(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := spreadsheetFile(c)
	if err != nil {
		return err
	}
	defer file.Close()

	result, err := h.analyticsService.UploadSalesData(ctx, middleware.StoreID(c), file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	exportType := c.QueryParam("type")
	rows, err := h.exportService.Export(ctx, middleware.StoreID(c), exportType, dateRange(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"type": exportType,
		"rows": rows,
	})
}

func (h *AnalyticsHandler) ExportSalesWorkbook(c echo.Context) error {
	ctx := c.Request().Context()

	buf, filename, err := h.exportService.SalesWorkbook(ctx, middleware.StoreID(c), dateRange(c))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
