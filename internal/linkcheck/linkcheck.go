package linkcheck

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/widgetic/apidocs/internal/files"
)

// Options describes the documentation tree.
// Folders are relative to Root; missing ones are skipped.
type Options struct {
	Root      string
	Folders   []string
	Extension string
}

// BrokenLink is a link that resolves to no file.
type BrokenLink struct {
	*Link
	Reason string
}

func (b *BrokenLink) Error() string {
	return fmt.Sprintf("%s:%d: %s (%s)", b.File, b.Line, b.Target, b.Reason)
}

// Report summarizes a check.
type Report struct {
	Files   int
	Links   int
	Skipped int
	Broken  []*BrokenLink
}

// Check validates every internal link of every content file.
// All broken links are collected; the returned error wraps ErrBrokenLinks.
func Check(opts Options) (*Report, error) {
	if opts.Extension == "" {
		opts.Extension = ".mdx"
	}

	paths, err := DiscoverFiles(opts.Root, opts.Folders, opts.Extension)
	if err != nil {
		return nil, err
	}

	report := &Report{Files: len(paths)}
	var result *multierror.Error

	for _, path := range paths {
		content, err := os.ReadFile(filepath.Join(opts.Root, path))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		for _, link := range ExtractLinks(path, string(content)) {
			if !IsInternal(link.Target) {
				report.Skipped++
				continue
			}

			target := stripFragment(link.Target)
			if target == "" {
				report.Skipped++
				continue
			}

			report.Links++
			if _, ok := Resolve(opts.Root, path, target, opts.Extension); ok {
				continue
			}

			broken := &BrokenLink{Link: link, Reason: "no matching file"}
			slog.Debug("broken link", "file", link.File, "line", link.Line, "link", link.Target)
			report.Broken = append(report.Broken, broken)
			result = multierror.Append(result, broken)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return report, fmt.Errorf("%w: %w", ErrBrokenLinks, err)
	}
	return report, nil
}

// DiscoverFiles returns the content files below the folders of root,
// relative to root, in lexical order.
func DiscoverFiles(root string, folders []string, ext string) ([]string, error) {
	var res []string
	for _, folder := range folders {
		dir := filepath.Join(root, folder)
		if !files.IsDir(dir) {
			slog.Debug("skipping missing folder", "folder", dir)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ext {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			res = append(res, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", dir, err)
		}
	}
	return res, nil
}

// Resolve finds the file a link points to.
// Absolute links start at root, others at the directory of the referencing file.
// Candidates are tried in order: as is, with ext, with .md, index file with ext,
// index.md.
func Resolve(root, file, target, ext string) (string, bool) {
	if unescaped, err := url.PathUnescape(target); err == nil {
		target = unescaped
	}

	var base string
	if strings.HasPrefix(target, "/") {
		base = filepath.Join(root, filepath.FromSlash(target))
	} else {
		base = filepath.Join(root, filepath.Dir(filepath.FromSlash(file)), filepath.FromSlash(target))
	}

	for _, candidate := range candidates(base, ext) {
		if files.IsRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func candidates(base, ext string) []string {
	res := []string{base, base + ext}
	if ext != ".md" {
		res = append(res, base+".md")
	}
	res = append(res, filepath.Join(base, "index"+ext))
	if ext != ".md" {
		res = append(res, filepath.Join(base, "index.md"))
	}
	return res
}
