// Package service implements lead form submission: validation, phone
// normalization, the spreadsheet append and outcome mapping.
package service

import (
	"context"
	"time"

	"seller_landing/internal/events"
	"seller_landing/internal/leadform/ports"
	"seller_landing/internal/leadform/transport"
	"seller_landing/platform/apperr"
	"seller_landing/platform/logger"
	"seller_landing/platform/metrics"
	"seller_landing/platform/phone"
	"seller_landing/platform/sanitize"
	"seller_landing/platform/validator"
)

const opSubmit = "leadform.Submit"

// Service handles lead form submissions.
type Service struct {
	appender ports.RowAppender
	target   ports.Target
	eventBus events.Bus
	metrics  metrics.Recorder
	val      *validator.Validator
	log      *logger.Logger
	now      func() time.Time
}

// New creates a submission service appending to target. eventBus and rec
// may be nil.
func New(appender ports.RowAppender, target ports.Target, eventBus events.Bus, rec metrics.Recorder, val *validator.Validator, log *logger.Logger) *Service {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{
		appender: appender,
		target:   target,
		eventBus: eventBus,
		metrics:  rec,
		val:      val,
		log:      log,
		now:      time.Now,
	}
}

// SetClock overrides the time source used for row timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Target returns the spreadsheet target rows are appended to.
func (s *Service) Target() ports.Target {
	return s.target
}

// CheckConfigured reports a configuration error when no spreadsheet is set.
func (s *Service) CheckConfigured() error {
	if s.target.SpreadsheetID == "" {
		s.metrics.ObserveSubmission(string(CategoryConfigMissing))
		s.log.SubmissionFailed(string(CategoryConfigMissing), errConfigMissing)
		return apperr.Internal(MsgConfigMissing).WithOp(opSubmit)
	}
	return nil
}

// Malformed records a request body that could not be decoded and returns
// the error to render.
func (s *Service) Malformed(err error) error {
	s.metrics.ObserveSubmission(string(CategoryMalformedRequest))
	return apperr.Wrap(apperr.KindBadRequest, MsgMalformedRequest, err).WithOp(opSubmit)
}

// Submit validates req, normalizes the phone number and appends one row.
// Either the row is appended and the recorded submission returned, or
// nothing is appended and an *apperr.Error describes why.
func (s *Service) Submit(ctx context.Context, req transport.SubmitRequest) (transport.Submission, error) {
	if err := s.CheckConfigured(); err != nil {
		return transport.Submission{}, err
	}

	if err := s.val.Struct(req); err != nil {
		s.metrics.ObserveSubmission(string(CategoryMissingFields))
		s.log.WithContext(ctx).Info("lead submission rejected", "missing", validator.FailedFields(err))
		return transport.Submission{}, apperr.Validation(MsgRequiredFields).WithOp(opSubmit)
	}

	formattedPhone := phone.FormatKorean(req.Phone)
	submittedAt := FormatTimestamp(s.now())

	row := ports.Row{
		Timestamp:    submittedAt,
		Name:         sanitize.Cell(req.Name),
		Phone:        sanitize.Cell(formattedPhone),
		Message:      sanitize.Cell(req.Message),
		ConsentLabel: consentLabel(req.Privacy),
	}

	start := time.Now()
	err := s.appender.AppendRow(ctx, s.target, row)
	s.metrics.ObserveAppend(time.Since(start))

	log := s.log.WithContext(ctx)
	if err != nil {
		category := Classify(err)
		s.metrics.ObserveSubmission(string(category))
		log.SubmissionFailed(string(category), err)
		return transport.Submission{}, apperr.Wrap(apperr.KindInternal, MessageFor(category, s.target), err).WithOp(opSubmit)
	}

	s.metrics.ObserveSubmission(string(CategoryAccepted))
	log.SubmissionAccepted(phone.Mask(formattedPhone), req.Message != "", req.Privacy)

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, events.LeadSubmitted{
			BaseEvent:   events.NewBaseEvent(),
			Name:        req.Name,
			Phone:       formattedPhone,
			Message:     req.Message,
			Privacy:     req.Privacy,
			SubmittedAt: submittedAt,
		})
	}

	return transport.Submission{
		Name:    req.Name,
		Phone:   formattedPhone,
		Message: req.Message,
		Privacy: req.Privacy,
	}, nil
}
