// Package ports defines the interfaces the leadform module needs from
// outside collaborators.
package ports

import (
	"context"
	"errors"
)

// Failure categories an appender reports. Implementations wrap one of these
// so the submission service can pick the visitor-facing message; any other
// error is treated as unknown.
var (
	ErrCredentialsMissing = errors.New("google api credentials configuration is missing")
	ErrCredentialsInvalid = errors.New("invalid google api credentials format")
	ErrPermissionDenied   = errors.New("permission denied on spreadsheet")
	ErrTargetNotFound     = errors.New("spreadsheet or sheet not found")
)

// Target identifies where rows are appended.
type Target struct {
	SpreadsheetID string
	SheetName     string
}

// Row is one lead as written to the spreadsheet, in column order.
type Row struct {
	Timestamp    string
	Name         string
	Phone        string
	Message      string
	ConsentLabel string
}

// Values returns the row in column order.
func (r Row) Values() []string {
	return []string{r.Timestamp, r.Name, r.Phone, r.Message, r.ConsentLabel}
}

// RowAppender appends a single row to the end of the target sheet.
type RowAppender interface {
	AppendRow(ctx context.Context, target Target, row Row) error
}
