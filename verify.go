package reorganizer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	out "github.com/n2code/reorganizer/internal/output"
)

func (r *reorganizer) Verify() (report VerificationReport) {
	report.HasManifest = r.present(r.layout.ManifestPath())
	report.HasAppDir = r.present(r.layout.AppDirPath())
	report.HasArchive = r.present(r.layout.ArchivePath())

	if report.HasManifest {
		report.Project, report.ManifestErr = r.classifyManifest()
	}
	if report.HasArchive {
		report.ArchiveEntries, report.ArchiveErr = r.listArchive()
	}

	r.log.Debug("verification done",
		zap.Bool("manifest", report.HasManifest),
		zap.Bool("app", report.HasAppDir),
		zap.Bool("archive", report.HasArchive),
		zap.Stringer("project", report.Project),
		zap.Int("archived", len(report.ArchiveEntries)))
	return
}

func (r *reorganizer) present(path string) bool {
	_, err := r.fs.Stat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		r.log.Warn("presence check failed", zap.String("path", path), zap.Error(err))
		r.Print(out.Error, "cannot inspect %s: %s\n", r.displayablePath(path), err)
	}
	return err == nil
}

func (r *reorganizer) classifyManifest() (ProjectKind, error) {
	path := r.layout.ManifestPath()
	info, err := r.fs.Stat(path)
	if err != nil {
		return UnreadableManifest, err
	}
	if !info.Mode().IsRegular() {
		return UnreadableManifest, fmt.Errorf("%s is not a regular file", path)
	}
	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		r.log.Warn("cannot read manifest", zap.String("path", path), zap.Error(err))
		return UnreadableManifest, err
	}
	if strings.Contains(string(content), r.layout.MarkerToken) {
		return NewProject, nil
	}
	return OldProject, nil
}

func (r *reorganizer) listArchive() (entries []ArchiveEntry, err error) {
	infos, err := afero.ReadDir(r.fs, r.layout.ArchivePath())
	if err != nil {
		r.log.Warn("cannot list archive directory", zap.String("path", r.layout.ArchivePath()), zap.Error(err))
		return nil, err
	}
	entries = make([]ArchiveEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, ArchiveEntry{Name: info.Name(), Dir: info.IsDir()})
	}
	return
}

func (r *reorganizer) PrintVerification(report VerificationReport) {
	r.printBanner(out.Required, "VERIFICATION")

	r.Print(out.Required, "\n")
	r.printCheck(report.HasManifest, fmt.Sprintf("%s at root: %t", r.layout.ManifestName, report.HasManifest))
	r.printCheck(report.HasAppDir, fmt.Sprintf("%s directory at root: %t", r.layout.AppDirName, report.HasAppDir))
	r.printCheck(report.HasArchive, fmt.Sprintf("%s directory present: %t", r.layout.ArchiveName, report.HasArchive))

	switch report.Project {
	case NewProject:
		r.Print(out.Required, "   %s\n", r.printer.Mark(out.Success, fmt.Sprintf("%s (%s)", report.Project, r.layout.MarkerToken)))
	case OldProject:
		r.Print(out.Required, "   %s\n", r.printer.Mark(out.Warning, report.Project.String()))
	case UnreadableManifest:
		r.Print(out.Required, "   %s\n", r.printer.Mark(out.Failure, fmt.Sprintf("%s: %s", report.Project, report.ManifestErr)))
	}

	if !report.HasArchive {
		return
	}
	if report.ArchiveErr != nil {
		r.Print(out.Required, "\n%s\n", r.printer.Mark(out.Failure, fmt.Sprintf("could not list %s: %s", r.layout.ArchiveName, report.ArchiveErr)))
		return
	}
	r.Print(out.Required, "\nentries in %s: %d\n", r.layout.ArchiveName, len(report.ArchiveEntries))
	if len(report.ArchiveEntries) > 0 && r.printer.Enabled(out.Normal) {
		tree := out.NewVisualFileTree(r.layout.ArchiveName + "/")
		for _, entry := range report.ArchiveEntries {
			suffix := ""
			if entry.Dir {
				suffix = "/"
			}
			tree.InsertPath(entry.Name, "", suffix)
		}
		r.Print(out.Normal, "%s", out.Indent(3, tree.Render()))
	}
}

func (r *reorganizer) printCheck(ok bool, text string) {
	marker := out.Success
	if !ok {
		marker = out.Warning
	}
	r.Print(out.Required, "%s\n", r.printer.Mark(marker, text))
}

func (r *reorganizer) printBanner(class out.Class, title string) {
	r.Print(class, "\n%s\n%s\n%s\n", out.Rule, r.printer.Mark(out.Heading, title), out.Rule)
}
