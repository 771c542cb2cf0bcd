package handler

import (
	"net/http"

	"maison/internal/delivery/http/response"
	"maison/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler proxies backend-generated reports through to the admin.
// Report generation itself is entirely backend-owned.
type ReportHandler struct {
	reports repository.ReportRepository
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(reports repository.ReportRepository) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// DownloadReport streams a generated report file to the caller.
func (h *ReportHandler) DownloadReport(c echo.Context) error {
	report, err := h.reports.DownloadReport(c.Request().Context(), c.Param("type"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer report.Body.Close()

	if report.Filename != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+report.Filename+`"`)
	}

	return c.Stream(http.StatusOK, report.ContentType, report.Body)
}

type emailReportRequest struct {
	Recipient string `json:"recipient" validate:"required,email"`
}

// EmailReport asks the backend to mail a report to the recipient.
func (h *ReportHandler) EmailReport(c echo.Context) error {
	var req emailReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.reports.EmailReport(c.Request().Context(), c.Param("type"), req.Recipient); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Report emailed")
}
