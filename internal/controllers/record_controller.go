package controllers

import (
	"net/http"
	"strconv"

	"crm-system/internal/dto"
	"crm-system/internal/repositories"
	"crm-system/internal/services"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RecordController обслуживает REST-поверхность четырёх ресурсов:
// общий GET-список, типизированные POST и generic PATCH.
type RecordController struct {
	recordService services.RecordServiceInterface
	logger        *zap.Logger
}

func NewRecordController(service services.RecordServiceInterface, logger *zap.Logger) *RecordController {
	return &RecordController{recordService: service, logger: logger}
}

func (c *RecordController) ListRecords(ctx echo.Context) error {
	res, err := repositories.ParseResource(ctx.Param("resource"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	records, err := c.recordService.ListRecords(ctx.Request().Context(), res)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, records, http.StatusOK)
}

// CreateRecord разбирает вид ресурса один раз и дальше работает только
// с типизированными DTO: у каждого ресурса свой набор полей и правил
// валидации.
func (c *RecordController) CreateRecord(ctx echo.Context) error {
	res, err := repositories.ParseResource(ctx.Param("resource"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	switch res {
	case repositories.ResourceDepartments:
		return c.createDepartment(ctx)
	case repositories.ResourceEmployees:
		return c.createEmployee(ctx)
	case repositories.ResourceClients:
		return c.createClient(ctx)
	case repositories.ResourceRequests:
		return c.createRequest(ctx)
	}
	panic("неизвестный ресурс")
}

func (c *RecordController) createDepartment(ctx echo.Context) error {
	var payload dto.CreateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.recordService.CreateDepartment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusCreated)
}

func (c *RecordController) createEmployee(ctx echo.Context) error {
	var payload dto.CreateEmployeeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.recordService.CreateEmployee(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusCreated)
}

func (c *RecordController) createClient(ctx echo.Context) error {
	var payload dto.CreateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.recordService.CreateClient(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusCreated)
}

func (c *RecordController) createRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.recordService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, http.StatusCreated)
}

func (c *RecordController) UpdateRecord(ctx echo.Context) error {
	res, err := repositories.ParseResource(ctx.Param("resource"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err), c.logger)
	}
	fields := make(map[string]interface{})
	if err := ctx.Bind(&fields); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err), c.logger)
	}
	record, err := c.recordService.UpdateRecord(ctx.Request().Context(), res, id, fields)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, record, http.StatusOK)
}
