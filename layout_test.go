package reorganizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutPaths(t *testing.T) {
	requires := require.New(t)

	layout := DefaultLayout("/srv/site")

	requires.NoError(layout.Validate())
	requires.Equal("/srv/site/old", layout.ArchivePath())
	requires.Equal("/srv/site/outlivion-miniapp", layout.SourcePath())
	requires.Equal("/srv/site/package.json", layout.ManifestPath())
	requires.Equal("/srv/site/app", layout.AppDirPath())
}

func TestDefaultLayoutDoesNotShareExclusions(t *testing.T) {
	layout := DefaultLayout("/srv/site")
	layout.Excluded[0] = "changed"

	require.Equal(t, ".git", DefaultExcluded[0])
}

func TestLayoutIsExcluded(t *testing.T) {
	layout := DefaultLayout("/srv/site")
	layout.Excluded = []string{".git"}

	tests := []struct {
		name string
		want bool
	}{
		{name: ".git", want: true},
		{name: "old", want: true},
		{name: "outlivion-miniapp", want: true},
		{name: "node_modules", want: false},
		{name: "package.json", want: false},
		{name: ".gitignore", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, layout.IsExcluded(tt.name))
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Layout)
		wantErr string
	}{
		{name: "default", modify: func(*Layout) {}},
		{name: "no base", modify: func(l *Layout) { l.Base = "" }, wantErr: "base directory missing"},
		{name: "nested archive", modify: func(l *Layout) { l.ArchiveName = "old/archive" }, wantErr: "bad archive name"},
		{name: "parent source", modify: func(l *Layout) { l.SourceName = ".." }, wantErr: "bad source name"},
		{name: "empty manifest", modify: func(l *Layout) { l.ManifestName = "" }, wantErr: "bad manifest name"},
		{name: "bad exclusion", modify: func(l *Layout) { l.Excluded = append(l.Excluded, "a/b") }, wantErr: "bad excluded name"},
		{name: "archive is source", modify: func(l *Layout) { l.SourceName = l.ArchiveName }, wantErr: "must differ"},
		{name: "no marker", modify: func(l *Layout) { l.MarkerToken = "" }, wantErr: "marker token missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := DefaultLayout("/srv/site")
			tt.modify(&layout)

			err := layout.Validate()

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
