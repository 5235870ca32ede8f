// Package upload runs the batch of package submissions against an
// authenticated session.
package upload

import (
	"context"
	"fmt"

	"github.com/t-8ch/burp/internal/logging"
)

// Uploader is the slice of the AUR client the orchestrator needs.
type Uploader interface {
	Upload(ctx context.Context, path, categoryID string) error
}

// Outcome is the per-target result of one upload.
type Outcome struct {
	Path string
	Err  error
}

// Orchestrator uploads each target sequentially, reports every outcome as it
// completes and never aborts the batch on an individual failure.
type Orchestrator struct {
	uploader Uploader
	log      logging.Logger
}

// NewOrchestrator creates an orchestrator around an authenticated session.
func NewOrchestrator(uploader Uploader, log logging.Logger) *Orchestrator {
	return &Orchestrator{
		uploader: uploader,
		log:      log,
	}
}

// Run uploads the targets in input order. The returned error is nil only if
// every target succeeded; otherwise it wraps the first failure, while later
// targets are still attempted.
func (o *Orchestrator) Run(ctx context.Context, targets []string, categoryID string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(targets))

	// First-error-wins accumulator; later failures are reported but do not
	// replace it.
	var firstErr error
	failed := 0

	for _, target := range targets {
		err := o.uploader.Upload(ctx, target, categoryID)
		if err != nil {
			o.log.WithError(err).Error("failed to upload package",
				logging.Field{Key: logging.FieldPath, Value: target})
			failed++
			if firstErr == nil {
				firstErr = err
			}
		} else {
			o.log.Info("uploaded package",
				logging.Field{Key: logging.FieldPath, Value: target})
		}
		outcomes = append(outcomes, Outcome{Path: target, Err: err})
	}

	if firstErr != nil {
		return outcomes, fmt.Errorf("%d of %d uploads failed: %w", failed, len(targets), firstErr)
	}

	return outcomes, nil
}
