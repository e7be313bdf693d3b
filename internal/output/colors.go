package output

import "github.com/fatih/color"

type Marker int

const (
	Success Marker = iota
	Skip
	Warning
	Failure
	Heading
)

type markerStyle struct {
	label string
	color *color.Color
}

var markerDefinitions = []struct {
	marker Marker
	label  string
	attrs  []color.Attribute
}{
	{Success, "[ok]", []color.Attribute{color.FgGreen}},
	{Skip, "[skip]", []color.Attribute{color.Faint}},
	{Warning, "[warn]", []color.Attribute{color.FgYellow}},
	{Failure, "[fail]", []color.Attribute{color.FgRed, color.Bold}},
	{Heading, "", []color.Attribute{color.Bold}},
}

func makeMarkerStyles(useColors bool) map[Marker]markerStyle {
	styles := make(map[Marker]markerStyle, len(markerDefinitions))
	for _, def := range markerDefinitions {
		c := color.New(def.attrs...)
		if useColors {
			c.EnableColor() //overrides the library's own terminal detection
		} else {
			c.DisableColor()
		}
		styles[def.marker] = markerStyle{label: def.label, color: c}
	}
	return styles
}

// Mark prefixes text with the label of the marker, both colored if enabled.
func (p Printer) Mark(marker Marker, text string) string {
	style := p.markers[marker]
	if style.label == "" {
		return style.color.Sprint(text)
	}
	return style.color.Sprint(style.label) + " " + text
}
