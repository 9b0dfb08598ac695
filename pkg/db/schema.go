package db

// Schema defines the SQLite schema for the local submission history. The
// history records attempt outcomes only; it is never a queue of pending
// submissions.
const Schema = `
CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    attempt_id TEXT NOT NULL UNIQUE,
    application_id TEXT NOT NULL,
    latitude TEXT NOT NULL,
    longitude TEXT NOT NULL,
    wide_rooftop_photo TEXT,
    serial_number_photo TEXT,
    inverter_photo TEXT,
    payload_sha256 TEXT,
    status TEXT NOT NULL CHECK(status IN ('accepted', 'failed')),
    detail TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submissions_application_id ON submissions(application_id);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`

// Status constants
const (
	StatusAccepted = "accepted"
	StatusFailed   = "failed"
)

// Submission is one recorded submission attempt outcome.
type Submission struct {
	ID                int64
	AttemptID         string
	ApplicationID     string
	Latitude          string
	Longitude         string
	WideRooftopPhoto  string
	SerialNumberPhoto string
	InverterPhoto     string
	PayloadSHA256     string
	Status            string
	Detail            string
	CreatedAt         string
}
