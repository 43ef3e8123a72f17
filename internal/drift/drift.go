package drift

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/widgetic/apidocs/internal/files"
	"github.com/widgetic/apidocs/internal/specsync"
)

// Remediation is shown when drift is detected.
const Remediation = `run "apidocs sync"`

// Options configures a drift check.
// Ignore lists keys removed anywhere in both documents before comparing.
type Options struct {
	Source      files.Source
	Target      string
	Ignore      []string
	StrictOrder bool
}

// Result of a drift check.
// Differences holds JSON pointers into the documents, at most MaxDifferences.
type Result struct {
	InSync      bool
	Differences []string
}

// Check compares the normalized source and target documents.
// It returns ErrDriftDetected together with the result when they differ.
func Check(ctx context.Context, opts Options) (*Result, error) {
	source, err := opts.Source.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: source %s: %v", ErrFileNotFound, opts.Source.Location(), err)
	}
	source, err = specsync.ToJSON(source)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", opts.Source.Location(), err)
	}

	target, err := os.ReadFile(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: target %s: %v", ErrFileNotFound, opts.Target, err)
	}

	a, err := Normalize(source, opts.Ignore, opts.StrictOrder)
	if err != nil {
		return nil, fmt.Errorf("normalizing source: %w", err)
	}
	b, err := Normalize(target, opts.Ignore, opts.StrictOrder)
	if err != nil {
		return nil, fmt.Errorf("normalizing target: %w", err)
	}

	if bytes.Equal(a, b) {
		slog.Debug("documents in sync", "source", opts.Source.Location(), "target", opts.Target)
		return &Result{InSync: true}, nil
	}

	res := &Result{Differences: differences(source, target, opts.Ignore)}
	return res, fmt.Errorf("%w: %s", ErrDriftDetected, Remediation)
}

// differences locates the changes; when only key order differs the root is reported.
func differences(source, target []byte, ignore []string) []string {
	a, errA := decode(source, ignore)
	b, errB := decode(target, ignore)
	if errA != nil || errB != nil {
		return []string{"/"}
	}

	res := Diff(a, b, MaxDifferences)
	if len(res) == 0 {
		return []string{"/"}
	}
	return res
}
