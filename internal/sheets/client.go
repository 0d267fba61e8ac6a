// Package sheets appends lead rows to a Google Sheets spreadsheet using a
// service account.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"seller_landing/internal/leadform/ports"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	valueInputOption = "USER_ENTERED"
	insertDataOption = "INSERT_ROWS"
)

// Client implements ports.RowAppender. The underlying Sheets service is
// built on first use and shared by all callers.
type Client struct {
	credentialsJSON string

	mu         sync.Mutex
	svc        *gsheets.Service
	newService func(ctx context.Context) (*gsheets.Service, error)
}

// New creates a client authenticating with the given service account key.
// An empty key is reported as ports.ErrCredentialsMissing on use.
func New(credentialsJSON string) *Client {
	c := &Client{credentialsJSON: strings.TrimSpace(credentialsJSON)}
	c.newService = c.serviceFromCredentials
	return c
}

// AppendRow appends row after the last row of the target sheet.
func (c *Client) AppendRow(ctx context.Context, target ports.Target, row ports.Row) error {
	svc, err := c.service(ctx)
	if err != nil {
		return err
	}

	values := row.Values()
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	_, err = svc.Spreadsheets.Values.
		Append(target.SpreadsheetID, target.SheetName, &gsheets.ValueRange{
			Values: [][]interface{}{cells},
		}).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Context(ctx).
		Do()
	if err != nil {
		return classify("append row", err)
	}
	return nil
}

// Verify checks that the spreadsheet is reachable with the configured
// credentials and that it contains the target sheet.
func (c *Client) Verify(ctx context.Context, target ports.Target) error {
	svc, err := c.service(ctx)
	if err != nil {
		return err
	}

	spreadsheet, err := svc.Spreadsheets.Get(target.SpreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return classify("get spreadsheet", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == target.SheetName {
			return nil
		}
	}
	return fmt.Errorf("sheet %q: %w", target.SheetName, ports.ErrTargetNotFound)
}

func (c *Client) service(ctx context.Context) (*gsheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.svc != nil {
		return c.svc, nil
	}

	svc, err := c.newService(ctx)
	if err != nil {
		return nil, err
	}
	c.svc = svc
	return svc, nil
}

func (c *Client) serviceFromCredentials(ctx context.Context) (*gsheets.Service, error) {
	if c.credentialsJSON == "" {
		return nil, ports.ErrCredentialsMissing
	}

	creds, err := google.CredentialsFromJSON(context.WithoutCancel(ctx), []byte(c.credentialsJSON), gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrCredentialsInvalid, err)
	}

	svc, err := gsheets.NewService(context.WithoutCancel(ctx), option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// classify wraps Sheets API failures in the matching port sentinel.
func classify(op string, err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	text := apiErr.Message + " " + apiErr.Body
	switch {
	case apiErr.Code == http.StatusForbidden || strings.Contains(text, "PERMISSION_DENIED"):
		return fmt.Errorf("%s: %w: %s", op, ports.ErrPermissionDenied, apiErr.Message)
	case apiErr.Code == http.StatusNotFound ||
		strings.Contains(text, "Requested entity was not found") ||
		strings.Contains(text, "Unable to parse range"):
		return fmt.Errorf("%s: %w: %s", op, ports.ErrTargetNotFound, apiErr.Message)
	case apiErr.Code == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w: %s", op, ports.ErrCredentialsInvalid, apiErr.Message)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

var _ ports.RowAppender = (*Client)(nil)
