package output

import (
	"fmt"
	"io"
)

type Class int

const (
	Required Class = iota
	Error
	Normal
	Verbose
)

type Printer struct {
	classes   map[Class]bool
	terminal  io.Writer
	diagnosis io.Writer
	markers   map[Marker]markerStyle
}

// NewPrinter creates a printer which only emits the given classes of output.
// Everything goes to terminal except class Error which is written to diagnosis.
func NewPrinter(include []Class, terminal io.Writer, diagnosis io.Writer, useColors bool) (p Printer) {
	p = Printer{
		classes:   map[Class]bool{},
		terminal:  terminal,
		diagnosis: diagnosis,
		markers:   makeMarkerStyles(useColors),
	}
	for _, class := range include {
		p.classes[class] = true
	}
	return
}

func (p Printer) Out(class Class, format string, values ...interface{}) {
	if !p.classes[class] {
		return
	}
	target := &p.terminal
	if class == Error {
		target = &p.diagnosis
	}
	fmt.Fprintf(*target, format, values...)
}

// Enabled reports whether output of the given class is emitted at all.
func (p Printer) Enabled(class Class) bool {
	return p.classes[class]
}
