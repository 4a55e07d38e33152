package handler

import (
	"net/http"
	"shopease-api/internal/dto"
	"shopease-api/internal/middleware"
	"shopease-api/internal/model"
	"shopease-api/internal/service"

	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	storeService   service.StoreService
	sectionService service.SectionService
	offerService   service.OfferService
}

func NewStoreHandler(
	storeService service.StoreService,
	sectionService service.SectionService,
	offerService service.OfferService,
) *StoreHandler {
	return &StoreHandler{
		storeService:   storeService,
		sectionService: sectionService,
		offerService:   offerService,
	}
}

func (h *StoreHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	store, err := h.storeService.GetStore(ctx, middleware.StoreID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, storeResponse(store))
}

func (h *StoreHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.storeService.UpdateStore(ctx, middleware.StoreID(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, storeResponse(store))
}

func (h *StoreHandler) CreateSection(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateSectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	section, err := h.sectionService.Create(ctx, middleware.StoreID(c), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sectionResponse(section))
}

func (h *StoreHandler) ListSections(c echo.Context) error {
	ctx := c.Request().Context()

	sections, err := h.sectionService.List(ctx, middleware.StoreID(c))
	if err != nil {
		return err
	}

	resp := make([]dto.SectionResponse, len(sections))
	for i, section := range sections {
		resp[i] = sectionResponse(section)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *StoreHandler) UpdateSection(c echo.Context) error {
	ctx := c.Request().Context()

	sectionID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateSectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	section, err := h.sectionService.Update(ctx, middleware.StoreID(c), sectionID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sectionResponse(section))
}

func (h *StoreHandler) DeleteSection(c echo.Context) error {
	ctx := c.Request().Context()

	sectionID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.sectionService.Delete(ctx, middleware.StoreID(c), sectionID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// PublicStore serves the shopper-facing storefront: store identity plus
// sections, no credentials required.
func (h *StoreHandler) PublicStore(c echo.Context) error {
	ctx := c.Request().Context()

	storeID, err := uintParam(c, "storeId")
	if err != nil {
		return err
	}

	store, err := h.storeService.GetStore(ctx, storeID)
	if err != nil {
		return err
	}

	sections, err := h.sectionService.List(ctx, storeID)
	if err != nil {
		return err
	}

	sectionResp := make([]dto.SectionResponse, len(sections))
	for i, section := range sections {
		sectionResp[i] = dto.SectionResponse{ID: section.ID, Name: section.Name}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"store": dto.StoreResponse{
			ID:      store.ID,
			Name:    store.Name,
			Address: store.Address,
			Phone:   store.Phone,
		},
		"sections": sectionResp,
	})
}

func (h *StoreHandler) PublicOffers(c echo.Context) error {
	ctx := c.Request().Context()

	storeID, err := uintParam(c, "storeId")
	if err != nil {
		return err
	}

	var sectionID *uint
	if raw := c.QueryParam("section_id"); raw != "" {
		parsed, perr := parseUintQuery(raw)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid section_id")
		}
		sectionID = &parsed
	}

	offers, err := h.offerService.ListPublic(ctx, storeID, sectionID)
	if err != nil {
		return err
	}

	resp := make([]dto.OfferResponse, len(offers))
	for i, offer := range offers {
		resp[i] = offerResponse(offer)
	}

	return c.JSON(http.StatusOK, resp)
}

func storeResponse(store *model.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:      store.ID,
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
		Phone:   store.Phone,
		QRImage: store.QRImage,
	}
}

func sectionResponse(section *model.StoreSection) dto.SectionResponse {
	return dto.SectionResponse{
		ID:      section.ID,
		Name:    section.Name,
		QRImage: section.QRImage,
	}
}
