package specsync

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/internal/files"
)

// Options configures a sync run.
// Hint tells the operator how to regenerate a missing source.
type Options struct {
	Source files.Source
	Target string
	Hint   string
}

// Result describes what a sync run did.
// Written is false when the target already held the same content.
// Summary is nil when the written document could not be summarized.
type Result struct {
	Source   string
	Target   string
	Written  bool
	Checksum string
	Summary  *Summary
}

// Sync copies the source document to the target path.
// YAML sources are converted to JSON keeping key order.
func Sync(ctx context.Context, opts Options) (*Result, error) {
	content, err := ReadSource(ctx, opts.Source, opts.Hint)
	if err != nil {
		return nil, err
	}

	content, err = ToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSource, opts.Source.Location(), err)
	}

	res := &Result{
		Source:   opts.Source.Location(),
		Target:   opts.Target,
		Checksum: files.GetContentHash(content),
	}

	existing, err := os.ReadFile(opts.Target)
	if err == nil && bytes.Equal(existing, content) {
		slog.Debug("target up to date", "target", opts.Target, "checksum", res.Checksum)
	} else {
		if err := files.SaveFile(opts.Target, content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", opts.Target, err)
		}
		res.Written = true
		slog.Debug("target written", "target", opts.Target, "bytes", len(content))
	}

	summary, err := Summarize(content)
	if err != nil {
		slog.Warn("could not summarize endpoints", "target", opts.Target, "error", err)
	} else {
		res.Summary = summary
	}

	return res, nil
}

// ReadSource reads the source document. Failures are reported as
// ErrSourceUnavailable together with the regeneration hint.
func ReadSource(ctx context.Context, source files.Source, hint string) ([]byte, error) {
	content, err := source.Read(ctx)
	if err != nil {
		msg := fmt.Sprintf("%s: %v", source.Location(), err)
		if hint != "" {
			msg += "; " + hint
		}
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, msg)
	}
	return content, nil
}

// ToJSON returns JSON content untouched and renders YAML content as indented JSON.
func ToJSON(content []byte) ([]byte, error) {
	if files.IsJsonType(content) {
		return content, nil
	}

	if !files.IsYamlType(content) {
		return nil, document.ErrInvalidDocument
	}

	doc, err := document.Parse(content)
	if err != nil {
		return nil, err
	}
	return doc.Bytes()
}
