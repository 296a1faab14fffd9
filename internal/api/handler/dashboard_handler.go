package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// DashboardHandler serves the two landing pages behind the role redirect.
type DashboardHandler struct {
	Base
	employees ports.EmployeeService
}

func NewDashboardHandler(base Base, employees ports.EmployeeService) *DashboardHandler {
	return &DashboardHandler{Base: base, employees: employees}
}

// Admin handles GET /admin-dashboard — every user record, with edit links.
func (h *DashboardHandler) Admin(c echo.Context) error {
	employees, err := h.employees.ListEmployees(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list employees")
		return redirectBack(c)
	}

	data := h.viewData(c, "Admin Dashboard")
	data["Employees"] = employees
	return c.Render(http.StatusOK, "admin_dashboard.html", data)
}

// Employee handles GET /employee-dashboard/:id — the employee's incoming
// feedback plus the colleagues they can review.
func (h *DashboardHandler) Employee(c echo.Context) error {
	detail, err := h.employees.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("employee_id", c.Param("id")).Msg("failed to load dashboard")
		return c.Redirect(http.StatusFound, "/")
	}

	all, err := h.employees.ListEmployees(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list colleagues")
		return c.Redirect(http.StatusFound, "/")
	}

	colleagues := make([]domain.User, 0, len(all))
	for _, u := range all {
		if u.ID != detail.Employee.ID {
			colleagues = append(colleagues, u)
		}
	}

	data := h.viewData(c, "Employee Dashboard")
	data["Employee"] = detail.Employee
	data["Reviews"] = detail.Reviews
	data["Colleagues"] = colleagues
	return c.Render(http.StatusOK, "employee_dashboard.html", data)
}
