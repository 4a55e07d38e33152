package handler

import (
	"net/http"
	"shopease-api/internal/middleware"
	"shopease-api/internal/service"

	"github.com/labstack/echo/v4"
)

type QRHandler struct {
	qrService service.QRService
}

func NewQRHandler(qrService service.QRService) *QRHandler {
	return &QRHandler{
		qrService: qrService,
	}
}

func (h *QRHandler) GenerateStoreQR(c echo.Context) error {
	ctx := c.Request().Context()

	dataURL, err := h.qrService.GenerateStoreQR(ctx, middleware.StoreID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"qr_image": dataURL,
	})
}

func (h *QRHandler) GenerateSectionQR(c echo.Context) error {
	ctx := c.Request().Context()

	sectionID, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	dataURL, err := h.qrService.GenerateSectionQR(ctx, middleware.StoreID(c), sectionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"qr_image": dataURL,
	})
}
