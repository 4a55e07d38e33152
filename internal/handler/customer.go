package handler

import (
	"net/http"
	"shopease-api/internal/dto"
	"shopease-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

func (h *CustomerHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CustomerRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.customerService.Register(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"customer_id": customer.ID,
		"message":     "otp sent",
	})
}

func (h *CustomerHandler) VerifyOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.customerService.VerifyOTP(ctx, req.Phone, req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"customer_id": customer.ID,
		"verified":    customer.Verified,
	})
}

func (h *CustomerHandler) ResendOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ResendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.customerService.ResendOTP(ctx, req.Phone); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "otp sent",
	})
}
