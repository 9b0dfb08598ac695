package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/internal/config"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/photolib"
)

// ensureDirectories creates all necessary directories for the application
func ensureDirectories(sqlitePath, fsmDBPath, workDir string) error {
	// Create database directory
	if err := os.MkdirAll(filepath.Dir(sqlitePath), 0755); err != nil {
		return errors.Wrap(err, "failed to create database directory")
	}

	// Create FSM database directory (only needed for submit command)
	if fsmDBPath != "" {
		if err := os.MkdirAll(fsmDBPath, 0755); err != nil {
			return errors.Wrap(err, "failed to create FSM directory")
		}
	}

	// Create work directory (only needed for submit command)
	if workDir != "" {
		if err := os.MkdirAll(workDir, 0755); err != nil {
			return errors.Wrap(err, "failed to create work directory")
		}
	}

	return nil
}

// photoLibrary selects the configured photo source: the S3 evidence bucket
// when set, otherwise the local media directory.
func photoLibrary(ctx context.Context, cfg *config.Config) (photolib.Library, error) {
	if cfg.EvidenceBucket != "" {
		cacheDir := filepath.Join(cfg.WorkDir, "media-cache")
		return photolib.NewBucketLibrary(ctx, cfg.EvidenceBucket, cfg.EvidenceRegion, cfg.EvidencePrefix, cacheDir)
	}
	if cfg.MediaDir != "" {
		return photolib.NewDirLibrary(cfg.MediaDir), nil
	}
	return nil, errors.New("no photo library configured")
}
