package scan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/wrenfield/scan-inbox/internal/detect"
	"github.com/wrenfield/scan-inbox/internal/item"
	"github.com/wrenfield/scan-inbox/internal/scanning"
)

// TimeSource provides the current time.
type TimeSource interface {
	Now() time.Time
}

type defaultTimeSource struct{}

func (defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service is the scan orchestrator: it dispatches to the heuristic engine
// or the remote scanner, times the operation, and wraps the outcome in a
// Result. It never returns an error past its own boundary.
//
// Scans are one-shot and independent; the Service holds no mutable state
// between them.
type Service struct {
	engine     *detect.Engine
	scanner    scanning.Scanner
	history    History
	timeSource TimeSource
}

// NewService creates a Service. The scanner and history may be nil: a nil
// scanner makes smart scans fail with a configuration error, and a nil
// history disables scan recording.
func NewService(engine *detect.Engine, scanner scanning.Scanner, history History) *Service {
	return NewServiceWithDeps(engine, scanner, history, defaultTimeSource{})
}

// NewServiceWithDeps creates a Service with a custom time source for testing.
func NewServiceWithDeps(engine *detect.Engine, scanner scanning.Scanner, history History, timeSrc TimeSource) *Service {
	return &Service{
		engine:     engine,
		scanner:    scanner,
		history:    history,
		timeSource: timeSrc,
	}
}

// ScanText runs the heuristic detectors over recognized text. The quick
// path performs no I/O and cannot fail; zero items is a valid outcome.
func (s *Service) ScanText(text string) Result {
	start := s.timeSource.Now()
	items := s.engine.Detect(text)
	res := Result{
		Success:        true,
		Mode:           ModeQuick,
		Items:          items,
		RawText:        text,
		ProcessingTime: s.timeSource.Now().Sub(start).Milliseconds(),
	}
	s.record(res)
	return res
}

// ScanImage sends the image to the remote scanner. Any failure from the
// scanner becomes a Result with Success false and an empty item list.
func (s *Service) ScanImage(ctx context.Context, imageData []byte, contentType string) Result {
	start := s.timeSource.Now()

	if s.scanner == nil {
		return s.fail(start, scanning.ErrNoCredentials, "")
	}

	items, raw, err := s.scanner.ScanImage(ctx, imageData, contentType)
	if err != nil {
		slog.Error("image scan failed", "error", err, "image_size", len(imageData), "raw_reply", raw)
		return s.fail(start, err, raw)
	}
	if items == nil {
		items = []item.Item{}
	}

	res := Result{
		Success:        true,
		Mode:           ModeSmart,
		Items:          items,
		RawText:        raw,
		ProcessingTime: s.timeSource.Now().Sub(start).Milliseconds(),
	}
	s.record(res)
	return res
}

// Recent returns the most recent recorded scans, newest first. With history
// disabled it returns an empty slice.
func (s *Service) Recent(limit int) ([]Result, error) {
	if s.history == nil {
		return []Result{}, nil
	}
	return s.history.Recent(limit)
}

func (s *Service) fail(start time.Time, cause error, raw string) Result {
	res := Result{
		Success:        false,
		Mode:           ModeSmart,
		Items:          []item.Item{},
		RawText:        raw,
		Error:          cause.Error(),
		ProcessingTime: s.timeSource.Now().Sub(start).Milliseconds(),
		cause:          cause,
	}
	// A canceled scan never resolves downstream; don't record it either.
	if !errors.Is(cause, context.Canceled) {
		s.record(res)
	}
	return res
}

func (s *Service) record(res Result) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(res); err != nil {
		slog.Warn("failed to record scan", "error", err)
	}
}
