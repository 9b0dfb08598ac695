// Package db persists the local submission history in SQLite.
package db

import (
	"database/sql"
	"log/slog"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	_ "modernc.org/sqlite"
)

// Repository provides database operations for submission history records.
type Repository struct {
	db *sql.DB
}

// NewRepository opens the history database and ensures the schema exists.
func NewRepository(dbPath string) (*Repository, error) {
	slog.Info("database_init", "db_path", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		slog.Error("database_open_failed", "db_path", dbPath, "error", err)
		return nil, errors.Wrap(err, "failed to open database")
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		slog.Error("database_schema_failed", "db_path", dbPath, "error", err)
		return nil, errors.Wrap(err, "failed to create schema")
	}

	slog.Info("database_ready", "db_path", dbPath)
	return &Repository{db: db}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Create inserts a new submission record.
func (r *Repository) Create(sub *Submission) error {
	slog.Info("database_create_submission",
		"attempt_id", sub.AttemptID,
		"application_id", sub.ApplicationID,
		"status", sub.Status,
	)

	query := `
		INSERT INTO submissions (attempt_id, application_id, latitude, longitude,
		                         wide_rooftop_photo, serial_number_photo, inverter_photo,
		                         payload_sha256, status, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.Exec(query,
		sub.AttemptID, sub.ApplicationID, sub.Latitude, sub.Longitude,
		sub.WideRooftopPhoto, sub.SerialNumberPhoto, sub.InverterPhoto,
		sub.PayloadSHA256, sub.Status, sub.Detail)
	if err != nil {
		slog.Error("database_insert_failed", "attempt_id", sub.AttemptID, "error", err)
		return errors.Wrap(err, "failed to insert submission")
	}

	id, err := result.LastInsertId()
	if err != nil {
		slog.Error("database_last_insert_id_failed", "attempt_id", sub.AttemptID, "error", err)
		return errors.Wrap(err, "failed to get last insert id")
	}
	sub.ID = id

	return nil
}

// GetByAttemptID retrieves one submission record, or nil when absent.
func (r *Repository) GetByAttemptID(attemptID string) (*Submission, error) {
	query := `
		SELECT id, attempt_id, application_id, latitude, longitude,
		       wide_rooftop_photo, serial_number_photo, inverter_photo,
		       payload_sha256, status, detail, created_at
		FROM submissions WHERE attempt_id = ?
	`
	row := r.db.QueryRow(query, attemptID)

	sub, err := scanSubmission(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		slog.Error("database_query_failed", "attempt_id", attemptID, "error", err)
		return nil, errors.Wrap(err, "failed to query submission")
	}
	return sub, nil
}

// List retrieves all submission records, newest first.
func (r *Repository) List() ([]*Submission, error) {
	query := `
		SELECT id, attempt_id, application_id, latitude, longitude,
		       wide_rooftop_photo, serial_number_photo, inverter_photo,
		       payload_sha256, status, detail, created_at
		FROM submissions ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		slog.Error("database_list_query_failed", "error", err)
		return nil, errors.Wrap(err, "failed to list submissions")
	}
	defer rows.Close()

	var subs []*Submission
	for rows.Next() {
		sub, err := scanSubmission(rows.Scan)
		if err != nil {
			slog.Error("database_scan_row_failed", "error", err)
			return nil, errors.Wrap(err, "failed to scan row")
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}

	slog.Info("database_list_complete", "submission_count", len(subs))
	return subs, nil
}

func scanSubmission(scan func(dest ...any) error) (*Submission, error) {
	var sub Submission
	var wide, serial, inverter, sha, detail sql.NullString

	err := scan(
		&sub.ID, &sub.AttemptID, &sub.ApplicationID, &sub.Latitude, &sub.Longitude,
		&wide, &serial, &inverter, &sha, &sub.Status, &detail, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}

	sub.WideRooftopPhoto = wide.String
	sub.SerialNumberPhoto = serial.String
	sub.InverterPhoto = inverter.String
	sub.PayloadSHA256 = sha.String
	sub.Detail = detail.String

	return &sub, nil
}
