package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"crm-system/internal/dto"
	"crm-system/internal/services"
	"crm-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetRequestsReport(ctx echo.Context) error {
	format := strings.ToLower(ctx.QueryParam("format"))

	report, err := c.reportService.GetRequestsReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, report)
	}
	return utils.SuccessResponse(ctx, report, http.StatusOK)
}

func (c *ReportController) GetDashboard(ctx echo.Context) error {
	stats, err := c.reportService.GetDashboard(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stats, http.StatusOK)
}

var reportHeaders = []string{
	"№", "Клиент", "Менеджер", "Инженер", "Город", "Адрес",
	"Сумма", "Себестоимость", "Срок", "Статус", "Дата создания",
}

func reportRowToSlice(item dto.RequestReportRow) []interface{} {
	dateFmt := "02.01.2006"
	var deadline, amount, cost string
	if item.Deadline != nil {
		deadline = item.Deadline.Format(dateFmt)
	}
	if item.Amount != nil {
		amount = fmt.Sprintf("%.2f", *item.Amount)
	}
	if item.Cost != nil {
		cost = fmt.Sprintf("%.2f", *item.Cost)
	}

	return []interface{}{
		item.ID, item.CompanyName, utils.SafeDeref(item.ManagerName), utils.SafeDeref(item.EngineerName),
		item.City, item.Address, amount, cost, deadline, item.Status,
		item.CreatedAt.Format(dateFmt),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, report []dto.RequestReportRow) error {
	f := excelize.NewFile()
	sheet := "Отчет по заявкам"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range report {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "D", 25)
	f.SetColWidth(sheet, "E", "F", 20)
	f.SetColWidth(sheet, "J", "J", 25)

	fileName := fmt.Sprintf("requests_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
