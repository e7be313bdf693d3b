package reorganizer

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	out "github.com/n2code/reorganizer/internal/output"
)

type VerbosityLevel int

// CreateConfig holds a set of common configuration switches that concern all calls to the reorganizer API.
// The zero value is a sensible default.
type CreateConfig struct {
	Verbosity VerbosityLevel
	Colors    bool
	Logger    *zap.Logger //nil disables logging
	Stdout    io.Writer   //nil means os.Stdout
	Stderr    io.Writer   //nil means os.Stderr
}

const (
	DefaultVerbosity VerbosityLevel = iota //progress of every step and entry
	VerboseMode                            //additionally details like fallbacks and silently skipped entries
	QuietMode                              //only failures, totals, and the verification
)

// New creates a reorganizer handle operating on the given filesystem.
// The base directory of the layout is made absolute; it is not required to exist at this point.
func New(fs afero.Fs, layout Layout, config CreateConfig) (Reorganizer, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	layout.Base = mustAbsFilepath(layout.Base)
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return makeReorganizer(fs, layout, config), nil
}

type reorganizer struct {
	fs      afero.Fs
	layout  Layout
	printer out.Printer
	log     *zap.Logger
	wd      string //empty if unknown
}

func makeReorganizer(fs afero.Fs, layout Layout, config CreateConfig) (instance *reorganizer) {
	stdout, stderr := config.Stdout, config.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	classes := []out.Class{out.Required, out.Error}
	switch config.Verbosity {
	case VerboseMode:
		classes = append(classes, out.Verbose)
		fallthrough
	case DefaultVerbosity:
		classes = append(classes, out.Normal)
	}

	instance = &reorganizer{
		fs:      fs,
		layout:  layout,
		printer: out.NewPrinter(classes, stdout, stderr, config.Colors),
		log:     config.Logger,
	}
	if instance.log == nil {
		instance.log = zap.NewNop()
	}
	if wd, err := os.Getwd(); err == nil {
		instance.wd = wd
	} else {
		instance.log.Debug("working directory unknown, paths are shown anchored", zap.Error(err))
	}
	return
}

func (r *reorganizer) Print(class out.Class, format string, values ...interface{}) {
	r.printer.Out(class, format, values...)
}
