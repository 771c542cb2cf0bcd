package repository

import (
	"context"
	"io"
)

// Report is a backend-generated file streamed through to the caller.
type Report struct {
	ContentType string
	Filename    string
	Body        io.ReadCloser
}

// ReportRepository proxies report generation, which is entirely backend-owned.
type ReportRepository interface {
	// DownloadReport fetches a generated report of the given type
	// (e.g. "orders", "sales"). The caller must close the body.
	DownloadReport(ctx context.Context, reportType string) (*Report, error)

	// EmailReport asks the backend to mail a report to the recipient.
	EmailReport(ctx context.Context, reportType, recipient string) error
}
