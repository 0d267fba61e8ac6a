package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"seller_landing/internal/events"
	"seller_landing/internal/leadform/ports"
	"seller_landing/internal/leadform/transport"
	"seller_landing/platform/apperr"
	"seller_landing/platform/logger"
	"seller_landing/platform/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppender struct {
	mu     sync.Mutex
	err    error
	rows   []ports.Row
	target ports.Target
}

func (f *fakeAppender) AppendRow(_ context.Context, target ports.Target, row ports.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.target = target
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

type countingRecorder struct {
	mu       sync.Mutex
	outcomes []string
	appends  int
}

func (r *countingRecorder) ObserveSubmission(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *countingRecorder) ObserveAppend(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appends++
}

var testTarget = ports.Target{SpreadsheetID: "sheet-123", SheetName: "Sheet1"}

func newTestService(appender ports.RowAppender, target ports.Target, bus events.Bus, rec *countingRecorder) *Service {
	svc := New(appender, target, bus, rec, validator.New(), logger.Nop())
	svc.SetClock(func() time.Time {
		return time.Date(2025, 1, 5, 6, 4, 5, 0, time.UTC)
	})
	return svc
}

func TestSubmitAppendsNormalizedRow(t *testing.T) {
	appender := &fakeAppender{}
	rec := &countingRecorder{}
	svc := newTestService(appender, testTarget, nil, rec)

	got, err := svc.Submit(context.Background(), transport.SubmitRequest{
		Name:    "홍길동",
		Phone:   "01012345678",
		Message: "상세페이지 진단 부탁드립니다",
		Privacy: true,
	})
	require.NoError(t, err)

	assert.Equal(t, transport.Submission{
		Name:    "홍길동",
		Phone:   "010-1234-5678",
		Message: "상세페이지 진단 부탁드립니다",
		Privacy: true,
	}, got)

	require.Len(t, appender.rows, 1)
	assert.Equal(t, []string{
		"2025. 1. 5. 오후 3:04:05",
		"홍길동",
		"010-1234-5678",
		"상세페이지 진단 부탁드립니다",
		ConsentGiven,
	}, appender.rows[0].Values())
	assert.Equal(t, testTarget, appender.target)
	assert.Equal(t, []string{string(CategoryAccepted)}, rec.outcomes)
	assert.Equal(t, 1, rec.appends)
}

func TestSubmitConsentRefusedAndEmptyMessage(t *testing.T) {
	appender := &fakeAppender{}
	svc := newTestService(appender, testTarget, nil, &countingRecorder{})

	got, err := svc.Submit(context.Background(), transport.SubmitRequest{Name: "김", Phone: "0212345678"})
	require.NoError(t, err)
	assert.Equal(t, "02-1234-5678", got.Phone)
	assert.Equal(t, "", got.Message)
	assert.False(t, got.Privacy)

	require.Len(t, appender.rows, 1)
	assert.Equal(t, "", appender.rows[0].Message)
	assert.Equal(t, ConsentRefused, appender.rows[0].ConsentLabel)
}

func TestSubmitKeepsUnrecognizedPhone(t *testing.T) {
	appender := &fakeAppender{}
	svc := newTestService(appender, testTarget, nil, &countingRecorder{})

	got, err := svc.Submit(context.Background(), transport.SubmitRequest{Name: "Kim", Phone: "12345"})
	require.NoError(t, err)
	assert.Equal(t, "12345", got.Phone)
}

func TestSubmitGuardsFormulaCells(t *testing.T) {
	appender := &fakeAppender{}
	svc := newTestService(appender, testTarget, nil, &countingRecorder{})

	_, err := svc.Submit(context.Background(), transport.SubmitRequest{
		Name:    "=HYPERLINK(\"http://x\")",
		Phone:   "+1 555",
		Message: "@channel",
	})
	require.NoError(t, err)

	require.Len(t, appender.rows, 1)
	row := appender.rows[0]
	assert.Equal(t, "'=HYPERLINK(\"http://x\")", row.Name)
	assert.Equal(t, "'+1 555", row.Phone)
	assert.Equal(t, "'@channel", row.Message)
}

func TestSubmitRequiresNameAndPhone(t *testing.T) {
	cases := []struct {
		name string
		req  transport.SubmitRequest
	}{
		{name: "missing name", req: transport.SubmitRequest{Phone: "01012345678"}},
		{name: "missing phone", req: transport.SubmitRequest{Name: "홍길동"}},
		{name: "both missing", req: transport.SubmitRequest{Message: "hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appender := &fakeAppender{}
			rec := &countingRecorder{}
			svc := newTestService(appender, testTarget, nil, rec)

			_, err := svc.Submit(context.Background(), tc.req)
			require.Error(t, err)

			appErr, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, apperr.KindValidation, appErr.Kind)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
			assert.Equal(t, MsgRequiredFields, appErr.Message)
			assert.Nil(t, appErr.Details)
			assert.Empty(t, appErr.Cause())
			assert.Empty(t, appender.rows)
			assert.Zero(t, rec.appends)
			assert.Equal(t, []string{string(CategoryMissingFields)}, rec.outcomes)
		})
	}
}

func TestSubmitWithoutSpreadsheetID(t *testing.T) {
	appender := &fakeAppender{}
	svc := newTestService(appender, ports.Target{SheetName: "Sheet1"}, nil, &countingRecorder{})

	_, err := svc.Submit(context.Background(), transport.SubmitRequest{Name: "홍길동", Phone: "01012345678"})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
	assert.Equal(t, MsgConfigMissing, appErr.Message)
	assert.Empty(t, appErr.Cause())
	assert.Empty(t, appender.rows)
}

func TestSubmitMapsAppenderFailures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category Category
		message  string
	}{
		{
			name:     "credentials missing",
			err:      ports.ErrCredentialsMissing,
			category: CategoryCredentialsMissing,
			message:  MsgCredentialsMissing,
		},
		{
			name:     "credentials invalid",
			err:      fmt.Errorf("parse: %w", ports.ErrCredentialsInvalid),
			category: CategoryCredentialsInvalid,
			message:  MsgCredentialsInvalid,
		},
		{
			name:     "permission denied",
			err:      fmt.Errorf("append: %w", ports.ErrPermissionDenied),
			category: CategoryPermissionDenied,
			message:  MsgPermissionDenied,
		},
		{
			name:     "target not found",
			err:      fmt.Errorf("append: %w", ports.ErrTargetNotFound),
			category: CategoryTargetNotFound,
			message:  "Google Sheet ID (sheet-123) 또는 시트 이름 (Sheet1)을 찾을 수 없습니다. 확인해주세요.",
		},
		{
			name:     "unknown",
			err:      errors.New("connection reset"),
			category: CategoryUnknown,
			message:  MsgUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &countingRecorder{}
			svc := newTestService(&fakeAppender{err: tc.err}, testTarget, nil, rec)

			_, err := svc.Submit(context.Background(), transport.SubmitRequest{Name: "홍길동", Phone: "01012345678"})
			require.Error(t, err)

			appErr, ok := apperr.As(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus())
			assert.Equal(t, tc.message, appErr.Message)
			assert.Equal(t, tc.err.Error(), appErr.Cause())
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, []string{string(tc.category)}, rec.outcomes)
		})
	}
}

func TestSubmitPublishesLeadSubmitted(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Nop())

	var (
		mu       sync.Mutex
		received []events.LeadSubmitted
	)
	bus.Subscribe(events.LeadSubmitted{}.EventName(), events.HandlerFunc(func(_ context.Context, event events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, event.(events.LeadSubmitted))
		return nil
	}))

	svc := newTestService(&fakeAppender{}, testTarget, bus, &countingRecorder{})
	_, err := svc.Submit(context.Background(), transport.SubmitRequest{Name: "홍길동", Phone: "010 1234 5678", Privacy: true})
	require.NoError(t, err)

	bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "홍길동", received[0].Name)
	assert.Equal(t, "010-1234-5678", received[0].Phone)
	assert.True(t, received[0].Privacy)
	assert.Equal(t, "2025. 1. 5. 오후 3:04:05", received[0].SubmittedAt)
}

func TestSubmitDoesNotPublishOnFailure(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Nop())

	var mu sync.Mutex
	calls := 0
	bus.Subscribe(events.LeadSubmitted{}.EventName(), events.HandlerFunc(func(context.Context, events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return nil
	}))

	svc := newTestService(&fakeAppender{err: ports.ErrPermissionDenied}, testTarget, bus, &countingRecorder{})
	_, err := svc.Submit(context.Background(), transport.SubmitRequest{Name: "홍길동", Phone: "01012345678"})
	require.Error(t, err)

	bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{in: time.Date(2025, 1, 5, 6, 4, 5, 0, time.UTC), want: "2025. 1. 5. 오후 3:04:05"},
		{in: time.Date(2025, 1, 4, 15, 0, 0, 0, time.UTC), want: "2025. 1. 5. 오전 12:00:00"},
		{in: time.Date(2025, 12, 31, 3, 30, 9, 0, time.UTC), want: "2025. 12. 31. 오후 12:30:09"},
		{in: time.Date(2025, 6, 1, 0, 0, 1, 0, time.UTC), want: "2025. 6. 1. 오전 9:00:01"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTimestamp(tc.in))
	}
}
