package reorganizer

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	DefaultArchiveName  = "old"
	DefaultSourceName   = "outlivion-miniapp"
	DefaultManifestName = "package.json"
	DefaultAppDirName   = "app"
	DefaultMarkerToken  = "outlivion-miniapp"
)

// DefaultExcluded lists the top-level names never moved into the archive besides the archive and source directories themselves:
// version control, dependencies, build output, and the files of the reorganization tooling.
var DefaultExcluded = []string{".git", "node_modules", ".next", "reorganize.sh", "reorganize_final.py", "reorganizer"}

// Layout describes where everything lives. All names are single path segments below Base.
type Layout struct {
	Base         string
	ArchiveName  string
	SourceName   string
	Excluded     []string
	ManifestName string
	AppDirName   string
	MarkerToken  string //manifest content containing it identifies the promoted project
}

// DefaultLayout returns the fixed layout of the reorganization rooted at base.
func DefaultLayout(base string) Layout {
	excluded := make([]string, len(DefaultExcluded))
	copy(excluded, DefaultExcluded)
	return Layout{
		Base:         base,
		ArchiveName:  DefaultArchiveName,
		SourceName:   DefaultSourceName,
		Excluded:     excluded,
		ManifestName: DefaultManifestName,
		AppDirName:   DefaultAppDirName,
		MarkerToken:  DefaultMarkerToken,
	}
}

func (l Layout) Validate() error {
	if l.Base == "" {
		return errors.New("base directory missing")
	}
	for _, named := range []struct{ what, name string }{
		{"archive", l.ArchiveName},
		{"source", l.SourceName},
		{"manifest", l.ManifestName},
		{"app", l.AppDirName},
	} {
		if err := validateName(named.name); err != nil {
			return fmt.Errorf("bad %s name: %w", named.what, err)
		}
	}
	for _, name := range l.Excluded {
		if err := validateName(name); err != nil {
			return fmt.Errorf("bad excluded name: %w", err)
		}
	}
	if l.ArchiveName == l.SourceName {
		return fmt.Errorf("archive and source must differ (both %q)", l.ArchiveName)
	}
	if l.MarkerToken == "" {
		return errors.New("marker token missing")
	}
	return nil
}

// IsExcluded reports whether a top-level entry stays where it is during archival.
// The archive and source directories are always excluded.
func (l Layout) IsExcluded(name string) bool {
	if name == l.ArchiveName || name == l.SourceName {
		return true
	}
	for _, excluded := range l.Excluded {
		if name == excluded {
			return true
		}
	}
	return false
}

func (l Layout) ArchivePath() string {
	return filepath.Join(l.Base, l.ArchiveName)
}

func (l Layout) SourcePath() string {
	return filepath.Join(l.Base, l.SourceName)
}

func (l Layout) ManifestPath() string {
	return filepath.Join(l.Base, l.ManifestName)
}

func (l Layout) AppDirPath() string {
	return filepath.Join(l.Base, l.AppDirName)
}
