package reorganizer

import (
	"fmt"

	"go.uber.org/zap"

	out "github.com/n2code/reorganizer/internal/output"
)

func (r *reorganizer) Cleanup() error {
	source := r.layout.SourcePath()
	r.Print(out.Normal, "\n%s\n", r.printer.Mark(out.Heading, fmt.Sprintf("4. Removing %s...", r.layout.SourceName)))

	if err := r.fs.RemoveAll(source); err != nil {
		r.log.Warn("cannot remove source directory", zap.String("path", source), zap.Error(err))
		r.Print(out.Required, "   %s\n", r.printer.Mark(out.Failure, fmt.Sprintf("could not remove %s: %s", r.displayablePath(source), err)))
		return fmt.Errorf("removing %s failed: %w", source, err)
	}

	r.log.Debug("source directory removed", zap.String("path", source))
	r.Print(out.Normal, "   %s\n", r.printer.Mark(out.Success, "directory removed: "+r.displayablePath(source)))
	return nil
}
