package fiber

import (
	"context"
	"errors"
	"net/http"

	"pageview-analytics/internal/dashboard/core/domain"
	"pageview-analytics/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardResult, error)
}

type DashboardHandler struct {
	uc GetDashboardUseCase
}

func NewDashboardHandler(uc GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary Analytics dashboard
// @Description Visitors, page views, trend and top-N breakdowns for a fixed window ending now
// @Tags Dashboard
// @Produce json
// @Param range query string false "Window: 24h | 7d | 30d (default 7d)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} DashboardResponse "Events could not be loaded; figures are zero and error is set"
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	in := usecase.GetDashboardInput{
		Range: c.Query("range", ""),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: "range must be one of 24h, 7d, 30d",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	status := http.StatusOK
	if res.Error != "" {
		status = http.StatusServiceUnavailable
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).JSON(toDashboardResponse(res))
}
