package config

import (
	"time"

	cwerrors "github.com/standardbeagle/lci/internal/errors"
)

// Validator checks a loaded Config for internally-inconsistent values and
// fills in any zero-value field with its documented default, so every other
// package can treat Config as fully populated.
type Validator struct{}

func NewValidator() *Validator { return &Validator{} }

// ValidateAndSetDefaults mutates cfg in place. It returns a KindConfig error
// (§7) on any option whose value is outside the documented range.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if cfg.WorkspaceRoot == "" {
		return cwerrors.New(cwerrors.KindConfig, "validate", errConfigField("workspace_root", "must not be empty"))
	}
	if cfg.IndexPath == "" {
		cfg.IndexPath = cfg.WorkspaceRoot + "/.codewalk-index"
	}
	if cfg.FileWatch.DebounceMs <= 0 {
		cfg.FileWatch.DebounceMs = 500
	}
	switch cfg.Server.Mode {
	case ServerModeStdio, ServerModeHTTP, ServerModeHTTPS:
	case "":
		cfg.Server.Mode = ServerModeStdio
	default:
		return cwerrors.New(cwerrors.KindConfig, "validate", errConfigField("server.mode", string(cfg.Server.Mode)))
	}
	if cfg.Server.WatchInterval <= 0 {
		cfg.Server.WatchInterval = 2 * time.Second
	}
	if cfg.IndexWriters <= 0 {
		cfg.IndexWriters = 2
	}
	if cfg.Languages == nil {
		cfg.Languages = Default(cfg.WorkspaceRoot).Languages
	}
	return nil
}

type configFieldError struct {
	field, reason string
}

func (e *configFieldError) Error() string { return e.field + ": " + e.reason }

func errConfigField(field, reason string) error {
	return &configFieldError{field: field, reason: reason}
}
