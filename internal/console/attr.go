package console

import "github.com/fatih/color"

// Attr is a console text attribute. The low nibble selects the foreground:
// bit 0 blue, bit 1 green, bit 2 red, bit 3 intensity.
type Attr uint8

const (
	AttrDefault Attr = 0x07 // light gray
	AttrInfo    Attr = 0x0A // bright green
	AttrError   Attr = 0x0C // bright red
	AttrWarning Attr = 0x0E // amber
)

const (
	attrBlue      Attr = 0x01
	attrGreen     Attr = 0x02
	attrRed       Attr = 0x04
	attrIntensity Attr = 0x08
)

// Foreground maps the attribute onto an SGR foreground color.
func (a Attr) Foreground() color.Attribute {
	// SGR orders the palette red=1 green=2 blue=4, the console attribute
	// orders it blue=1 green=2 red=4.
	var idx color.Attribute
	if a&attrRed != 0 {
		idx |= 1
	}
	if a&attrGreen != 0 {
		idx |= 2
	}
	if a&attrBlue != 0 {
		idx |= 4
	}
	if a&attrIntensity != 0 {
		return color.FgHiBlack + idx
	}
	return color.FgBlack + idx
}
