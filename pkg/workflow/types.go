package workflow

// SubmissionRequest is the FSM input
type SubmissionRequest struct {
	AttemptID     string
	ApplicationID string
}

// SubmissionResponse is the FSM output (accumulated across transitions)
type SubmissionResponse struct {
	// From Assemble
	PayloadPath   string
	ContentType   string
	PayloadSHA256 string
	PayloadSize   int64

	// From Upload
	ServerApplicationID string
	ServerMessage       string

	// From Record
	RecordID int64

	// From Complete/Failed
	Status      string
	ErrorDetail string
}

// State names
const (
	StateValidate = "validate"
	StateAssemble = "assemble"
	StateUpload   = "upload"
	StateRecord   = "record"
	StateComplete = "complete"
	StateFailed   = "failed"
)
