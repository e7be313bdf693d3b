package reorganizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/n2code/reorganizer/internal/fsutil"
	out "github.com/n2code/reorganizer/internal/output"
)

const hiddenPrefix = "."

func (r *reorganizer) Promote() (result StepResult, err error) {
	source := r.layout.SourcePath()
	r.Print(out.Normal, "\n%s\n", r.printer.Mark(out.Heading, fmt.Sprintf("3. Copying %s contents to the root...", r.layout.SourceName)))

	if err = r.checkSource(source); err != nil {
		r.Print(out.Required, "   %s\n", r.printer.Mark(out.Failure, err.Error()))
		return
	}
	r.log.Debug("promotion started", zap.String("source", source), zap.String("base", r.layout.Base))

	entries, err := afero.ReadDir(r.fs, source)
	if err != nil {
		r.log.Error("cannot list source directory", zap.String("path", source), zap.Error(err))
		err = newCommandError("source directory cannot be listed", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, hiddenPrefix) {
			result.Skipped = append(result.Skipped, name)
			r.Print(out.Verbose, "   %s\n", r.printer.Mark(out.Skip, name+" (hidden)"))
			continue
		}

		from := filepath.Join(source, name)
		to := filepath.Join(r.layout.Base, name)
		if to == source {
			r.recordFailure(&result, name, "could not copy", errors.New("would replace the source directory itself"))
			continue
		}
		if copyErr := r.promoteEntry(from, to); copyErr != nil {
			r.recordFailure(&result, name, "could not copy", copyErr)
			continue
		}
		result.Done = append(result.Done, name)
		r.log.Debug("entry promoted", zap.String("entry", name))
		r.Print(out.Normal, "   %s\n", r.printer.Mark(out.Success, "copied: "+name))
	}

	r.log.Debug("promotion finished", zap.Int("copied", result.Count()), zap.Int("failed", len(result.Failed)))
	r.Print(out.Required, "\n   copied %d %s\n", result.Count(), out.Plural(result.Count(), "entry", "entries"))
	return
}

func (r *reorganizer) checkSource(source string) error {
	info, err := r.fs.Stat(source)
	switch {
	case errors.Is(err, os.ErrNotExist):
		r.log.Error("source directory missing", zap.String("path", source))
		return fmt.Errorf("%w: %s", ErrSourceMissing, source)
	case err != nil:
		r.log.Error("cannot inspect source directory", zap.String("path", source), zap.Error(err))
		return newCommandError(fmt.Sprintf("source directory %s cannot be inspected", source), err)
	case !info.IsDir():
		r.log.Error("source is not a directory", zap.String("path", source))
		return fmt.Errorf("%w: %s is not a directory", ErrSourceMissing, source)
	}
	return nil
}

// promoteEntry replaces whatever occupies to with a copy of from.
func (r *reorganizer) promoteEntry(from string, to string) error {
	info, err := r.fs.Stat(from)
	if err != nil {
		return err
	}

	occupied, err := fsutil.Exists(r.fs, to)
	if err != nil {
		return err
	}
	if occupied {
		if err := fsutil.Remove(r.fs, to); err != nil {
			return fmt.Errorf("cannot remove existing entry: %w", err)
		}
		r.log.Info("existing entry replaced", zap.String("path", to))
		r.Print(out.Verbose, "   %s\n", r.printer.Mark(out.Warning, "replacing: "+r.displayablePath(to)))
	}

	if info.IsDir() {
		return fsutil.CopyDir(r.fs, from, to)
	}
	return fsutil.CopyFile(r.fs, from, to)
}
