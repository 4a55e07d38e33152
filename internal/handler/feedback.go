package handler

import (
	"net/http"
	"shopease-api/internal/dto"
	"shopease-api/internal/middleware"
	"shopease-api/internal/service"

	"github.com/labstack/echo/v4"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	feedback, err := h.feedbackService.Submit(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"feedback_id": feedback.ID,
	})
}

func (h *FeedbackHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	feedbacks, err := h.feedbackService.List(ctx, middleware.StoreID(c), dateRange(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feedbacks)
}
