package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/loanboard/loanboard-backend/internal/domain"
	"github.com/dafibh/loanboard/loanboard-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the customer list page
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// viewState reads the dashboard state the browser sends as query parameters
func viewState(c echo.Context) (service.ViewState, error) {
	status, err := domain.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return service.ViewState{}, domain.ValidationErrors{{Field: "status", Err: err}}
	}

	view := service.ViewState{
		SearchTerm: c.QueryParam("search"),
		Status:     status,
	}

	if raw := c.QueryParam("customerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return service.ViewState{}, domain.ValidationErrors{{Field: "customerId", Err: domain.ErrCustomerIDRequired}}
		}
		view.SelectedCustomerID = id
	}
	return view, nil
}

// GetDashboard godoc
// @Summary Customer dashboard
// @Description Lists customers matching the search term and status filter, with book-wide statistics
// @Tags dashboard
// @Produce json
// @Param search query string false "Case-insensitive match on name, mobile or loan number"
// @Param status query string false "all, active or completed" Enums(all, active, completed)
// @Param customerId query int false "Include details for this customer"
// @Success 200 {object} service.DashboardView
// @Failure 400 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	view, err := viewState(c)
	if err != nil {
		return NewValidationError(c, "Invalid dashboard query", fieldErrors(err))
	}

	result, err := h.dashboardService.Dashboard(c.Request().Context(), view)
	if err != nil {
		return respondError(c, err, "Customer not found", "Failed to load customers")
	}

	return c.JSON(http.StatusOK, result)
}

// Reload godoc
// @Summary Reload customers
// @Description Fetches the customer list from the loan backend again and returns the refreshed dashboard
// @Tags dashboard
// @Produce json
// @Param search query string false "Case-insensitive match on name, mobile or loan number"
// @Param status query string false "all, active or completed" Enums(all, active, completed)
// @Success 200 {object} service.DashboardView
// @Failure 400 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /dashboard/reload [post]
func (h *DashboardHandler) Reload(c echo.Context) error {
	view, err := viewState(c)
	if err != nil {
		return NewValidationError(c, "Invalid dashboard query", fieldErrors(err))
	}

	ctx := c.Request().Context()
	if err := h.dashboardService.Reload(ctx); err != nil {
		return respondError(c, err, "Customer not found", "Failed to load customers")
	}

	result, err := h.dashboardService.Dashboard(ctx, view)
	if err != nil {
		return respondError(c, err, "Customer not found", "Failed to load customers")
	}

	return c.JSON(http.StatusOK, result)
}
