package encode

import (
	"github.com/signadot/yflow/value"

	"github.com/fatih/color"
)

type Colorable struct {
	Type value.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var (
	sepRGB  = [3]int{255, 0, 196}
	tagRGB  = [3]int{74, 92, 138}
	numRGB  = [3]int{128, 216, 236}
	palette = []struct {
		able Colorable
		rgb  [3]int
	}{
		{Colorable{value.IntType, ValueColor}, numRGB},
		{Colorable{value.FloatType, ValueColor}, numRGB},
		{Colorable{value.NullType, ValueColor}, [3]int{168, 0, 196}},
		{Colorable{value.BoolType, ValueColor}, [3]int{0, 196, 196}},
		{Colorable{value.StringType, ValueColor}, [3]int{8, 196, 16}},
		{Colorable{value.OpaqueType, ValueColor}, [3]int{198, 198, 46}},
		{Colorable{value.MappingType, FieldColor}, [3]int{128, 168, 196}},
		{Colorable{value.MappingType, SepColor}, [3]int{196, 128, 128}},
	}
)

// NewColors returns the default palette. Raw text is left uncoloured.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range value.Types() {
		colors.set(Colorable{t, TagColor}, tagRGB)
		colors.set(Colorable{t, SepColor}, sepRGB)
	}
	for _, p := range palette {
		colors.set(p.able, p.rgb)
	}
	return colors
}

func (c *Colors) set(able Colorable, rgb [3]int) {
	col := color.RGB(rgb[0], rgb[1], rgb[2])
	c.Map[able] = func(v string, _ ...any) string {
		return col.Sprint(v)
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t value.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t value.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
