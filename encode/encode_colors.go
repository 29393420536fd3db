package encode

import (
	"github.com/signadot/simplejson/ir"

	"github.com/fatih/color"
)

// Colorable names what a color applies to: one attribute of one type.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// palette holds the RGB triple for each attribute of each JSON type. The
// separator color covers brackets, ':' and ','.
var palette = []struct {
	typ  ir.Type
	attr ColorAttr
	rgb  [3]int
}{
	{ir.ObjectType, FieldColor, [3]int{128, 168, 196}},
	{ir.ObjectType, SepColor, [3]int{196, 128, 128}},
	{ir.ArrayType, SepColor, [3]int{255, 0, 196}},
	{ir.StringType, ValueColor, [3]int{8, 196, 16}},
	{ir.NumberType, ValueColor, [3]int{128, 216, 236}},
	{ir.BoolType, ValueColor, [3]int{0, 196, 196}},
	{ir.NullType, ValueColor, [3]int{168, 0, 196}},
}

// NewColors returns the colors sj uses on terminals.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     make(map[Colorable]func(string, ...any) string, len(palette)),
	}
	for _, p := range palette {
		f := color.RGB(p.rgb[0], p.rgb[1], p.rgb[2]).SprintFunc()
		colors.Map[Colorable{Type: p.typ, Attr: p.attr}] = func(v string, _ ...any) string {
			return f(v)
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
