package glyph

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Marker  bool
}

// DefaultGlyphs lists node icons first, then expand markers.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 8)

	g = append(g, Glyph{
		Key:     "root",
		Symbol:  "📁",
		Meaning: "root object",
	}, Glyph{
		Key:     "object",
		Symbol:  "📁",
		Meaning: "object",
	}, Glyph{
		Key:     "array",
		Symbol:  "📋",
		Meaning: "array",
	}, Glyph{
		Key:     "value",
		Symbol:  "📄",
		Meaning: "string, number, boolean or null",
	}, Glyph{
		Key:     "expanded",
		Symbol:  "▾",
		Meaning: "children shown",
		Marker:  true,
	}, Glyph{
		Key:     "collapsed",
		Symbol:  "▸",
		Meaning: "children hidden",
		Marker:  true,
	}, Glyph{
		Key:     "leaf",
		Symbol:  " ",
		Meaning: "no children",
		Marker:  true,
	}, Glyph{
		Key:     "match",
		Symbol:  "✷",
		Meaning: "search hit",
		Marker:  true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Node int
type Marker int

const (
	Root Node = iota
	Object
	Array
	Value
	Expanded Marker = iota
	Collapsed
	Leaf
	Match
)

func (n Node) Glyph() Glyph {
	return DefaultGlyphs()[n]
}

func (n Node) String() string {
	return n.Glyph().String()
}

func (m Marker) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Marker) String() string {
	return m.Glyph().String()
}
