package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/review-system/internal/api/metrics"
	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// EmployeeHandler serves the admin-only employee management pages and
// operations. The role gate runs in middleware; handlers assume an admin.
type EmployeeHandler struct {
	Base
	auth      ports.AuthService
	employees ports.EmployeeService
}

func NewEmployeeHandler(base Base, auth ports.AuthService, employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Base: base, auth: auth, employees: employees}
}

// AddEmployeePage handles GET /employees/add.
func (h *EmployeeHandler) AddEmployeePage(c echo.Context) error {
	return c.Render(http.StatusOK, "add_employee.html", h.viewData(c, "Add Employee"))
}

// EditEmployeePage handles GET /employees/edit/:id — the employee plus all
// feedback received, each entry expanded with the reviewer's identity. A
// fetch failure falls back to the referring page.
func (h *EmployeeHandler) EditEmployeePage(c echo.Context) error {
	detail, err := h.employees.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("employee_id", c.Param("id")).Msg("failed to load employee")
		return redirectBack(c)
	}

	data := h.viewData(c, "Edit Employee")
	data["Employee"] = detail.Employee
	data["Reviews"] = detail.Reviews
	return c.Render(http.StatusOK, "edit_employee.html", data)
}

// CreateEmployee handles POST /employees. The role is always employee
// here; promoting to admin goes through the edit page.
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req addEmployeeRequest
	if err := c.Bind(&req); err != nil {
		h.flash(c, ports.FlashError, "Couldn't add employee")
		return redirectBack(c)
	}
	if err := c.Validate(&req); err != nil {
		h.flash(c, ports.FlashError, err.Error())
		return redirectBack(c)
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.RoleEmployee,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			h.flash(c, ports.FlashError, "Password and Confirm password are not the same")
		case errors.Is(err, domain.ErrUserExists):
			h.flash(c, ports.FlashError, "Employee already registered!")
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("failed to add employee")
			h.flash(c, ports.FlashError, "Couldn't add employee")
		}
		return redirectBack(c)
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(user.Role)).Inc()
	h.flash(c, ports.FlashSuccess, "Employee added!")
	return redirectBack(c)
}

// UpdateEmployee handles POST /employees/:id — overwrites username and
// role. A missing target leaves the store unchanged.
func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return redirectBack(c)
	}
	if err := c.Validate(&req); err != nil {
		h.flash(c, ports.FlashError, err.Error())
		return redirectBack(c)
	}

	_, err := h.employees.UpdateEmployee(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Username: req.Username,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.flash(c, ports.FlashError, "Employee does not exist!")
		} else {
			h.log.Error().Err(err).Str("employee_id", c.Param("id")).Msg("failed to update employee")
		}
		return redirectBack(c)
	}

	metrics.EmployeesUpdatedTotal.Inc()
	h.flash(c, ports.FlashSuccess, "Employee details updated!")
	return redirectBack(c)
}

// DeleteEmployee handles POST /employees/delete/:id — removes every review
// naming the employee in either role, then the employee itself. The steps
// are independent: a failure partway leaves earlier deletes committed.
func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	id := c.Param("id")

	result, err := h.employees.DeleteEmployee(c.Request().Context(), id)
	metrics.ReviewsCascadeDeletedTotal.WithLabelValues("recipient").Add(float64(result.ReviewsAsRecipient))
	metrics.ReviewsCascadeDeletedTotal.WithLabelValues("reviewer").Add(float64(result.ReviewsAsReviewer))
	if err != nil {
		h.log.Error().Err(err).Str("employee_id", id).Msg("failed to delete employee")
		return redirectBack(c)
	}

	metrics.EmployeesDeletedTotal.Inc()
	h.flash(c, ports.FlashSuccess, "Employee and associated reviews deleted!")
	return redirectBack(c)
}
