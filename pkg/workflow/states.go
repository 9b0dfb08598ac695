package workflow

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/api"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/db"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/superfly/fsm"
)

// handleValidate runs the validation gate over the capture form. An
// invalid form aborts before anything touches the network.
func (m *Machine) handleValidate(ctx context.Context, req *fsm.Request[SubmissionRequest, SubmissionResponse]) (*fsm.Response[SubmissionResponse], error) {
	slog.Info("fsm_state_validate", "attempt_id", req.Msg.AttemptID, "application_id", req.Msg.ApplicationID)

	if err := m.rules.Validate(m.form); err != nil {
		slog.Warn("validation_rejected", "attempt_id", req.Msg.AttemptID, "reason", err.Error())
		m.failureDetail = err.Error()
		return nil, fsm.Abort(err)
	}

	resp := req.W.Msg
	if resp == nil {
		resp = &SubmissionResponse{}
	}

	slog.Info("validation_passed", "attempt_id", req.Msg.AttemptID)
	return fsm.NewResponse(resp), nil
}

// handleAssemble stages the multipart body in the work directory.
func (m *Machine) handleAssemble(ctx context.Context, req *fsm.Request[SubmissionRequest, SubmissionResponse]) (*fsm.Response[SubmissionResponse], error) {
	slog.Info("fsm_state_assemble", "attempt_id", req.Msg.AttemptID)

	resp := req.W.Msg
	if resp == nil {
		return nil, fsm.Abort(errors.New("response not initialized"))
	}

	payloadDir := filepath.Join(m.workDir, "payloads")
	if err := os.MkdirAll(payloadDir, 0755); err != nil {
		slog.Error("payload_dir_creation_failed", "path", payloadDir, "error", err)
		return nil, fsm.Abort(errors.Wrap(err, "failed to create payload dir"))
	}

	path := filepath.Join(payloadDir, req.Msg.AttemptID+".multipart")
	info, err := AssemblePayload(m.form, path, m.maxPhotoBytes)
	if err != nil {
		slog.Error("payload_assembly_failed", "attempt_id", req.Msg.AttemptID, "error", err)
		m.failureDetail = "Could not prepare the submission payload."
		return nil, fsm.Abort(errors.Wrap(err, "payload assembly failed"))
	}

	slog.Info("payload_assembled",
		"attempt_id", req.Msg.AttemptID,
		"size_kb", info.Size/1024,
		"sha256", info.SHA256[:16]+"...",
	)

	resp.PayloadPath = info.Path
	resp.ContentType = info.ContentType
	resp.PayloadSHA256 = info.SHA256
	resp.PayloadSize = info.Size

	return fsm.NewResponse(resp), nil
}

// handleUpload POSTs the staged body to the submission endpoint. Every
// failure aborts: retry is a fresh user-initiated attempt, never an
// automatic one.
func (m *Machine) handleUpload(ctx context.Context, req *fsm.Request[SubmissionRequest, SubmissionResponse]) (*fsm.Response[SubmissionResponse], error) {
	slog.Info("fsm_state_upload", "attempt_id", req.Msg.AttemptID)

	resp := req.W.Msg
	if resp == nil {
		return nil, fsm.Abort(errors.New("response not initialized"))
	}

	body, err := os.Open(resp.PayloadPath)
	if err != nil {
		slog.Error("payload_open_failed", "path", resp.PayloadPath, "error", err)
		return nil, fsm.Abort(errors.Wrap(err, "failed to open staged payload"))
	}
	defer body.Close()

	result, err := m.endpoint.SubmitEvidence(ctx, resp.ContentType, body)
	if err != nil {
		m.failureDetail = detailFromError(err)
		slog.Error("upload_failed", "attempt_id", req.Msg.AttemptID, "error", err)
		return nil, fsm.Abort(errors.Wrap(err, "upload failed"))
	}

	resp.ServerApplicationID = result.ApplicationID
	resp.ServerMessage = result.Message

	slog.Info("upload_accepted", "attempt_id", req.Msg.AttemptID, "application_id", result.ApplicationID)
	return fsm.NewResponse(resp), nil
}

// handleRecord persists the accepted attempt to the local history. History
// is best-effort: the upload already succeeded, so a local write failure
// must not fail the submission.
func (m *Machine) handleRecord(ctx context.Context, req *fsm.Request[SubmissionRequest, SubmissionResponse]) (*fsm.Response[SubmissionResponse], error) {
	slog.Info("fsm_state_record", "attempt_id", req.Msg.AttemptID)

	resp := req.W.Msg
	if resp == nil {
		return nil, fsm.Abort(errors.New("response not initialized"))
	}

	if m.repo != nil {
		sub := m.submissionRecord(req.Msg)
		sub.PayloadSHA256 = resp.PayloadSHA256
		sub.Status = db.StatusAccepted
		sub.Detail = resp.ServerMessage

		if err := m.repo.Create(sub); err != nil {
			slog.Warn("history_record_failed", "attempt_id", req.Msg.AttemptID, "error", err)
		} else {
			resp.RecordID = sub.ID
		}
	}

	return fsm.NewResponse(resp), nil
}

// handleComplete cleans the staged payload and marks the FSM done.
func (m *Machine) handleComplete(ctx context.Context, req *fsm.Request[SubmissionRequest, SubmissionResponse]) (*fsm.Response[SubmissionResponse], error) {
	slog.Info("fsm_state_complete", "attempt_id", req.Msg.AttemptID)

	resp := req.W.Msg
	if resp == nil {
		resp = &SubmissionResponse{}
	}

	if resp.PayloadPath != "" {
		if err := os.Remove(resp.PayloadPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("payload_cleanup_failed", "path", resp.PayloadPath, "error", err)
		}
	}

	resp.Status = db.StatusAccepted
	slog.Info("fsm_complete", "attempt_id", req.Msg.AttemptID, "status", resp.Status)

	return fsm.NewResponse(resp), nil
}

// detailFromError extracts the server-provided detail for display, falling
// back to empty when the failure carried none (transport errors).
func detailFromError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return ""
}
