package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"seller_landing/internal/leadform/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

var testTarget = ports.Target{SpreadsheetID: "sheet-123", SheetName: "Sheet1"}

var testRow = ports.Row{
	Timestamp:    "2025. 1. 5. 오후 3:04:05",
	Name:         "홍길동",
	Phone:        "010-1234-5678",
	Message:      "",
	ConsentLabel: "동의함",
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("")
	c.newService = func(ctx context.Context) (*gsheets.Service, error) {
		return gsheets.NewService(ctx,
			option.WithEndpoint(srv.URL+"/"),
			option.WithHTTPClient(srv.Client()),
			option.WithoutAuthentication(),
		)
	}
	return c
}

func writeAPIError(w http.ResponseWriter, code int, status, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = fmt.Fprintf(w, `{"error":{"code":%d,"message":%q,"status":%q}}`, code, message, status)
}

func TestAppendRowSendsUserEnteredRow(t *testing.T) {
	var (
		mu    sync.Mutex
		path  string
		query map[string][]string
		body  gsheets.ValueRange
	)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		path = r.URL.Path
		query = r.URL.Query()
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-123","updates":{"updatedRows":1}}`))
	}))

	require.NoError(t, c.AppendRow(context.Background(), testTarget, testRow))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/v4/spreadsheets/sheet-123/values/Sheet1:append", path)
	assert.Equal(t, []string{"USER_ENTERED"}, query["valueInputOption"])
	assert.Equal(t, []string{"INSERT_ROWS"}, query["insertDataOption"])
	require.Len(t, body.Values, 1)
	assert.Equal(t, []interface{}{"2025. 1. 5. 오후 3:04:05", "홍길동", "010-1234-5678", "", "동의함"}, body.Values[0])
}

func TestAppendRowClassifiesAPIErrors(t *testing.T) {
	cases := []struct {
		name    string
		code    int
		status  string
		message string
		want    error
	}{
		{name: "forbidden", code: http.StatusForbidden, status: "PERMISSION_DENIED", message: "The caller does not have permission", want: ports.ErrPermissionDenied},
		{name: "not found", code: http.StatusNotFound, status: "NOT_FOUND", message: "Requested entity was not found.", want: ports.ErrTargetNotFound},
		{name: "bad range", code: http.StatusBadRequest, status: "INVALID_ARGUMENT", message: "Unable to parse range: Missing", want: ports.ErrTargetNotFound},
		{name: "unauthenticated", code: http.StatusUnauthorized, status: "UNAUTHENTICATED", message: "Request had invalid authentication credentials.", want: ports.ErrCredentialsInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeAPIError(w, tc.code, tc.status, tc.message)
			}))

			err := c.AppendRow(context.Background(), testTarget, testRow)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAppendRowUnknownFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeAPIError(w, http.StatusInternalServerError, "INTERNAL", "backend error")
	}))

	err := c.AppendRow(context.Background(), testTarget, testRow)
	require.Error(t, err)
	for _, sentinel := range []error{ports.ErrCredentialsMissing, ports.ErrCredentialsInvalid, ports.ErrPermissionDenied, ports.ErrTargetNotFound} {
		assert.NotErrorIs(t, err, sentinel)
	}
}

func TestAppendRowWithoutCredentials(t *testing.T) {
	err := New("  ").AppendRow(context.Background(), testTarget, testRow)
	assert.ErrorIs(t, err, ports.ErrCredentialsMissing)
}

func TestAppendRowWithMalformedCredentials(t *testing.T) {
	err := New(`{"type": "service_account", `).AppendRow(context.Background(), testTarget, testRow)
	assert.ErrorIs(t, err, ports.ErrCredentialsInvalid)
}

func TestServiceBuiltOnce(t *testing.T) {
	builds := 0
	c := New("")
	c.newService = func(ctx context.Context) (*gsheets.Service, error) {
		builds++
		return gsheets.NewService(ctx, option.WithoutAuthentication(), option.WithEndpoint("http://127.0.0.1:0/"))
	}

	for i := 0; i < 3; i++ {
		_, err := c.service(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, builds)
}

func TestVerify(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/sheet-123"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sheets":[{"properties":{"title":"Sheet1"}},{"properties":{"title":"상담신청"}}]}`))
	}))

	require.NoError(t, c.Verify(context.Background(), testTarget))
	require.NoError(t, c.Verify(context.Background(), ports.Target{SpreadsheetID: "sheet-123", SheetName: "상담신청"}))

	err := c.Verify(context.Background(), ports.Target{SpreadsheetID: "sheet-123", SheetName: "Missing"})
	assert.ErrorIs(t, err, ports.ErrTargetNotFound)
}

func TestClassifyNonAPIError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := classify("append row", cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ports.ErrPermissionDenied)

	wrapped := classify("append row", &googleapi.Error{Code: http.StatusOK, Body: `{"status":"PERMISSION_DENIED"}`})
	assert.ErrorIs(t, wrapped, ports.ErrPermissionDenied)
}
