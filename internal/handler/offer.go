package handler

import (
	"net/http"
	"shopease-api/internal/dto"
	"shopease-api/internal/middleware"
	"shopease-api/internal/model"
	"shopease-api/internal/service"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct {
	offerService service.OfferService
}

func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

func (h *OfferHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offer, err := h.offerService.Create(ctx, middleware.StoreID(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, offerResponse(offer))
}

func (h *OfferHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	offerID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offerService.Get(ctx, middleware.StoreID(c), offerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, offerResponse(offer))
}

func (h *OfferHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	status := model.OfferStatus(c.QueryParam("status"))
	offers, err := h.offerService.List(ctx, middleware.StoreID(c), status)
	if err != nil {
		return err
	}

	resp := make([]dto.OfferResponse, len(offers))
	for i, offer := range offers {
		resp[i] = offerResponse(offer)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *OfferHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	offerID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.OfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offer, err := h.offerService.Update(ctx, middleware.StoreID(c), offerID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, offerResponse(offer))
}

func (h *OfferHandler) Toggle(c echo.Context) error {
	ctx := c.Request().Context()

	offerID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offerService.Toggle(ctx, middleware.StoreID(c), offerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, offerResponse(offer))
}

func (h *OfferHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	offerID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.offerService.Delete(ctx, middleware.StoreID(c), offerID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *OfferHandler) BulkImport(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := spreadsheetFile(c)
	if err != nil {
		return err
	}
	defer file.Close()

	result, err := h.offerService.BulkImport(ctx, middleware.StoreID(c), file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

func offerResponse(offer *model.Offer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:              offer.ID,
		SectionID:       offer.SectionID,
		Title:           offer.Title,
		Description:     offer.Description,
		OriginalPrice:   offer.OriginalPrice,
		DiscountedPrice: offer.DiscountedPrice,
		DiscountPercent: offer.DiscountPercent,
		StartDate:       offer.StartDate.Format("2006-01-02"),
		EndDate:         offer.EndDate.Format("2006-01-02"),
		Status:          string(offer.Status),
	}
}
