// Package workflow orchestrates the submission lifecycle: validate the
// capture form, assemble the multipart payload, upload it, and record the
// outcome locally, using the superfly/fsm library. A failed attempt leaves
// every captured value in place; retry is exactly the user submitting
// again.
package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/api"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capability"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/capture"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/db"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/google/uuid"
	"github.com/superfly/fsm"
)

// Endpoint is the backend collaborator that accepts the multipart payload.
type Endpoint interface {
	SubmitEvidence(ctx context.Context, contentType string, body io.Reader) (*api.SubmitResult, error)
}

// Navigator is the navigation sink invoked exactly once, on terminal
// submission success.
type Navigator interface {
	ShowSubmissions(ctx context.Context) error
}

// Machine holds dependencies for FSM transitions
type Machine struct {
	form      *capture.Form
	rules     capture.Rules
	endpoint  Endpoint
	repo      *db.Repository
	notifier  capability.Notifier
	navigator Navigator
	workDir   string

	maxPhotoBytes int64

	// failureDetail carries the user-facing reason of the most recent
	// failed attempt from the aborting handler back to Submit.
	failureDetail string
}

// NewMachine creates a new FSM machine with dependencies
func NewMachine(
	form *capture.Form,
	rules capture.Rules,
	endpoint Endpoint,
	repo *db.Repository,
	notifier capability.Notifier,
	navigator Navigator,
	workDir string,
	maxPhotoBytes int64,
) *Machine {
	return &Machine{
		form:          form,
		rules:         rules,
		endpoint:      endpoint,
		repo:          repo,
		notifier:      notifier,
		navigator:     navigator,
		workDir:       workDir,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// Register registers the evidence submission FSM
func (m *Machine) Register(ctx context.Context, manager *fsm.Manager) (fsm.Start[SubmissionRequest, SubmissionResponse], fsm.Resume, error) {
	start, resume, err := fsm.Register[SubmissionRequest, SubmissionResponse](manager, "evidence-submit").
		Start(StateValidate, m.handleValidate).
		To(StateAssemble, m.handleAssemble).
		To(StateUpload, m.handleUpload).
		To(StateRecord, m.handleRecord).
		To(StateComplete, m.handleComplete).
		End(StateFailed).
		Build(ctx)

	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to register FSM")
	}

	return start, resume, nil
}

// Submit runs one validate→submit cycle and blocks until it reaches a
// terminal state. It refuses to start while a capture or another
// submission holds the form. On failure the collaborator's detail (when
// present) is surfaced, the loading flag is cleared, and all captured
// state survives for immediate resubmission.
func (m *Machine) Submit(ctx context.Context, manager *fsm.Manager, start fsm.Start[SubmissionRequest, SubmissionResponse]) error {
	if !m.form.BeginOperation() {
		return capture.ErrOperationInFlight
	}
	defer m.form.EndOperation()

	m.failureDetail = ""

	req := &SubmissionRequest{
		AttemptID:     uuid.NewString(),
		ApplicationID: m.form.Identifier(),
	}
	resp := &SubmissionResponse{}

	version, err := start(ctx, req.AttemptID, fsm.NewRequest(req, resp))
	if err != nil {
		return errors.Wrap(err, "submission start failed")
	}

	slog.Info("submission_started", "attempt_id", req.AttemptID, "version", version)

	if err := manager.Wait(ctx, version); err != nil {
		slog.Error("submission_failed", "attempt_id", req.AttemptID, "error", err)

		detail := m.failureDetail
		if detail == "" {
			detail = "Submission failed. Please check your connection and try again."
		}
		m.notifier.Notify(detail)
		m.recordFailure(req, detail)

		return errors.Wrap(err, "submission failed")
	}

	slog.Info("submission_complete", "attempt_id", req.AttemptID, "application_id", req.ApplicationID)
	m.notifier.Notify(fmt.Sprintf("Application %s submitted successfully.", req.ApplicationID))

	if m.navigator != nil {
		if err := m.navigator.ShowSubmissions(ctx); err != nil {
			slog.Warn("navigation_failed", "error", err)
		}
	}

	return nil
}

// recordFailure keeps the local history complete. Best-effort: a history
// write must never mask the submission error itself.
func (m *Machine) recordFailure(req *SubmissionRequest, detail string) {
	if m.repo == nil {
		return
	}
	sub := m.submissionRecord(req)
	sub.Status = db.StatusFailed
	sub.Detail = detail
	if err := m.repo.Create(sub); err != nil {
		slog.Warn("history_record_failed", "attempt_id", req.AttemptID, "error", err)
	}
}

func (m *Machine) submissionRecord(req *SubmissionRequest) *db.Submission {
	sub := &db.Submission{
		AttemptID:     req.AttemptID,
		ApplicationID: m.form.Identifier(),
		Latitude:      m.form.Latitude(),
		Longitude:     m.form.Longitude(),
	}
	if photo := m.form.Photo(capture.SlotWideRooftop); photo != nil {
		sub.WideRooftopPhoto = photo.Name
	}
	if photo := m.form.Photo(capture.SlotSerialNumber); photo != nil {
		sub.SerialNumberPhoto = photo.Name
	}
	if photo := m.form.Photo(capture.SlotInverter); photo != nil {
		sub.InverterPhoto = photo.Name
	}
	return sub
}
