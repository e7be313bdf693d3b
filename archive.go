package reorganizer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/n2code/reorganizer/internal/fsutil"
	out "github.com/n2code/reorganizer/internal/output"
)

func (r *reorganizer) EnsureArchive() error {
	archive := r.layout.ArchivePath()
	r.Print(out.Normal, "\n%s\n", r.printer.Mark(out.Heading, fmt.Sprintf("1. Creating %s directory...", r.layout.ArchiveName)))

	if err := r.fs.MkdirAll(archive, 0o755); err != nil {
		r.log.Error("cannot create archive directory", zap.String("path", archive), zap.Error(err))
		return newCommandError(fmt.Sprintf("archive directory %s cannot be created", archive), err)
	}
	info, err := r.fs.Stat(archive)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", archive)
	}
	if err != nil {
		r.log.Error("archive directory unusable", zap.String("path", archive), zap.Error(err))
		return newCommandError("archive directory unusable", err)
	}

	r.log.Debug("archive directory ready", zap.String("path", archive))
	r.Print(out.Normal, "   %s\n", r.printer.Mark(out.Success, "directory ready: "+r.displayablePath(archive)))
	return nil
}

func (r *reorganizer) Archive() (result StepResult, err error) {
	archive := r.layout.ArchivePath()
	r.Print(out.Normal, "\n%s\n", r.printer.Mark(out.Heading, fmt.Sprintf("2. Moving existing entries into %s...", r.layout.ArchiveName)))
	r.log.Debug("archival started", zap.String("base", r.layout.Base), zap.String("archive", archive))

	entries, err := afero.ReadDir(r.fs, r.layout.Base)
	if err != nil {
		r.log.Error("cannot list base directory", zap.String("path", r.layout.Base), zap.Error(err))
		err = newCommandError("base directory cannot be listed", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if r.layout.IsExcluded(name) {
			result.Skipped = append(result.Skipped, name)
			r.Print(out.Normal, "   %s\n", r.printer.Mark(out.Skip, name))
			continue
		}

		source := filepath.Join(r.layout.Base, name)
		target := filepath.Join(archive, name)
		taken, checkErr := fsutil.Exists(r.fs, target)
		if checkErr != nil {
			r.recordFailure(&result, name, "could not check", checkErr)
			continue
		}
		if taken {
			result.Existing = append(result.Existing, name)
			r.log.Warn("archive entry exists already", zap.String("entry", name))
			r.Print(out.Normal, "   %s\n", r.printer.Mark(out.Warning, "already exists: "+name))
			continue
		}

		if moveErr := fsutil.Move(r.fs, source, target); moveErr != nil {
			r.recordFailure(&result, name, "could not move", moveErr)
			continue
		}
		result.Done = append(result.Done, name)
		r.log.Debug("entry archived", zap.String("entry", name))
		r.Print(out.Normal, "   %s\n", r.printer.Mark(out.Success, "moved: "+name))
	}

	r.log.Debug("archival finished", zap.Int("moved", result.Count()), zap.Int("failed", len(result.Failed)))
	r.Print(out.Required, "\n   moved %d %s\n", result.Count(), out.Plural(result.Count(), "entry", "entries"))
	return
}

func (r *reorganizer) recordFailure(result *StepResult, name string, action string, cause error) {
	result.Failed = append(result.Failed, EntryFailure{Name: name, Err: cause})
	r.log.Warn("entry failed", zap.String("entry", name), zap.String("action", action), zap.Error(cause))
	r.Print(out.Required, "   %s\n", r.printer.Mark(out.Failure, fmt.Sprintf("%s %s: %s", action, name, cause)))
}
