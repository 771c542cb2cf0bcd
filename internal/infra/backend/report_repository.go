package backend

import (
	"context"
	"mime"
	"net/http"

	"maison/internal/domain/repository"
)

type reportRepository struct {
	client *Client
}

// NewReportRepository creates a backend-API-backed report repository.
func NewReportRepository(client *Client) repository.ReportRepository {
	return &reportRepository{client: client}
}

func (r *reportRepository) DownloadReport(ctx context.Context, reportType string) (*repository.Report, error) {
	resp, err := r.client.raw(ctx, http.MethodGet, "/api/reports/download-"+reportType)
	if err != nil {
		return nil, err
	}

	report := &repository.Report{
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    reportType + "-report",
		Body:        resp.Body,
	}
	if report.ContentType == "" {
		report.ContentType = "application/octet-stream"
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			report.Filename = name
		}
	}

	return report, nil
}

func (r *reportRepository) EmailReport(ctx context.Context, reportType, recipient string) error {
	body := map[string]string{
		"type":      reportType,
		"recipient": recipient,
	}

	return r.client.post(ctx, "/api/reports/email-report", body, nil)
}
