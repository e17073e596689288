package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Houeta/staff-api/internal/lib/logger/sl"
	"github.com/Houeta/staff-api/internal/models"
	"github.com/Houeta/staff-api/internal/services/employees"
	"github.com/gin-gonic/gin"
)

// EmployeeService is the set of employee operations exposed over HTTP.
type EmployeeService interface {
	FindAll(ctx context.Context) ([]models.EmployeeDTO, error)
	FindByID(ctx context.Context, identifier int64) (models.EmployeeDTO, error)
	Save(ctx context.Context, dto models.EmployeeDTO) (models.EmployeeDTO, error)
	Delete(ctx context.Context, dto models.EmployeeDTO) error
}

type EmployeeHandler struct {
	service EmployeeService
	log     *slog.Logger
}

func NewEmployeeHandler(service EmployeeService, log *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, log: log.With(slog.String("division", "http"))}
}

// FindAll handles GET /employees.
func (h *EmployeeHandler) FindAll(c *gin.Context) {
	result, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to list employees", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// FindByID handles GET /employees/:id.
func (h *EmployeeHandler) FindByID(c *gin.Context) {
	identifier, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return
	}

	result, err := h.service.FindByID(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, employees.ErrEmployeeNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.internalError(c, "failed to get employee", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	h.save(c, http.StatusCreated)
}

// Update handles PUT /employees.
func (h *EmployeeHandler) Update(c *gin.Context) {
	h.save(c, http.StatusOK)
}

func (h *EmployeeHandler) save(c *gin.Context, status int) {
	var req models.EmployeeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		h.internalError(c, "failed to save employee", err)
		return
	}

	c.JSON(status, result)
}

// Delete handles DELETE /employees.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	var req models.EmployeeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req); err != nil {
		h.internalError(c, "failed to delete employee", err)
		return
	}

	c.JSON(http.StatusOK, true)
}

func (h *EmployeeHandler) internalError(c *gin.Context, msg string, err error) {
	h.log.ErrorContext(c.Request.Context(), msg, slog.String("path", c.Request.URL.Path), sl.Err(err))
	_ = c.Error(err)
	c.Status(http.StatusInternalServerError)
}
