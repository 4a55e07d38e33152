package handler

import (
	"net/http"
	"shopease-api/internal/dto"
	"shopease-api/internal/middleware"
	"shopease-api/internal/model"
	"shopease-api/internal/service"

	"github.com/labstack/echo/v4"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

func (h *SaleHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sale, err := h.saleService.Create(ctx, middleware.StoreID(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, saleResponse(sale, nil))
}

func (h *SaleHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	sales, err := h.saleService.List(ctx, middleware.StoreID(c), dateRange(c))
	if err != nil {
		return err
	}

	resp := make([]dto.SaleResponse, len(sales))
	for i, sale := range sales {
		resp[i] = saleResponse(sale, nil)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *SaleHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	sale, items, err := h.saleService.GetWithItems(ctx, middleware.StoreID(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, saleResponse(sale, items))
}

func saleResponse(sale *model.Sale, items []*model.SaleItem) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:            sale.ID,
		CustomerName:  sale.CustomerName,
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		PaymentStatus: sale.PaymentStatus,
		SaleTime:      sale.SaleTime.Format("2006-01-02 15:04:05"),
	}

	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemView{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return resp
}
