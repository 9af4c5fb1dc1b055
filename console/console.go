package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the rendering of trees.
type Config struct {
	MaxLabelWidth int            // maximum width of a node label, in fixed-width ‘en’s
	Colors        bool           // use colors for output
	Context       *uax11.Context // context for measuring label widths
}

// DefaultMaxLabelWidth is used if Config.MaxLabelWidth is not set.
const DefaultMaxLabelWidth = 20

// Palette holds the colors used for rendering a tree.
type Palette struct {
	Leaf, Inner, Edge *color.Color
}

// Printer renders binary trees as indented outlines, one node per line:
//
//	root
//	├─L a
//	│  └─L b
//	└─R c
type Printer struct {
	config  Config
	palette Palette
}

var setupOnce sync.Once

// NewPrinter creates a printer. If config is nil, a heuristic will create a
// config from the current terminal's properties. palette may be nil, selecting
// a default palette. The printer works on copies of the palette's colors;
// the caller's colors are left untouched.
func NewPrinter(config *Config, palette *Palette) *Printer {
	setupOnce.Do(func() { grapheme.SetupGraphemeClasses() })
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	p := &Printer{config: *config}
	if p.config.MaxLabelWidth <= 1 {
		p.config.MaxLabelWidth = DefaultMaxLabelWidth
	}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if palette == nil {
		p.palette = makeDefaultPalette()
	} else {
		p.palette = *palette
	}
	// colors are switched on or off per printer, thus every printer needs
	// its own copies
	p.palette.Leaf = p.ownColor(p.palette.Leaf)
	p.palette.Inner = p.ownColor(p.palette.Inner)
	p.palette.Edge = p.ownColor(p.palette.Edge)
	return p
}

func (p *Printer) ownColor(c *color.Color) *color.Color {
	if c == nil {
		return nil
	}
	own := *c
	if p.config.Colors {
		own.EnableColor()
	} else {
		own.DisableColor()
	}
	return &own
}

func makeDefaultPalette() Palette {
	return Palette{
		Leaf:  color.New(color.FgBlue),
		Inner: color.New(color.FgRed, color.Bold),
		Edge:  color.New(color.FgHiBlack),
	}
}

// Print outputs a tree to stdout, using a config derived from the terminal.
func Print[T any](root *bintree.Node[T]) error {
	return Fprint(NewPrinter(nil, nil), os.Stdout, root)
}

// Fprint outputs a tree to w, using printer p.
func Fprint[T any](p *Printer, w io.Writer, root *bintree.Node[T]) error {
	if root == nil {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	pr := &treeWriter{w: w}
	label(p, pr, root)
	pr.newline()
	printChildren(p, pr, root, "")
	return pr.err
}

func printChildren[T any](p *Printer, pr *treeWriter, node *bintree.Node[T], prefix string) {
	type edge struct {
		tag   string
		child *bintree.Node[T]
	}
	edges := make([]edge, 0, 2)
	if node.HasLeft() {
		edges = append(edges, edge{"L", node.Left()})
	}
	if node.HasRight() {
		edges = append(edges, edge{"R", node.Right()})
	}
	for i, e := range edges {
		connector, extension := "├─", "│  "
		if i == len(edges)-1 {
			connector, extension = "└─", "   "
		}
		pr.styled(prefix+connector+e.tag+" ", p.palette.Edge)
		label(p, pr, e.child)
		pr.newline()
		printChildren(p, pr, e.child, prefix+extension)
	}
}

func label[T any](p *Printer, pr *treeWriter, node *bintree.Node[T]) {
	s := truncate(fmt.Sprint(node.Value()), p.config.MaxLabelWidth, p.config.Context)
	if node.IsLeaf() {
		pr.styled(s, p.palette.Leaf)
	} else {
		pr.styled(s, p.palette.Inner)
	}
}

// truncate shortens s to a display width of at most maxw ‘en’s, appending an
// ellipsis if s had to be cut.
func truncate(s string, maxw int, context *uax11.Context) string {
	if uax11.StringWidth(grapheme.StringFromString(s), context) <= maxw {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		prefix := string(runes[:n])
		if uax11.StringWidth(grapheme.StringFromString(prefix), context) <= maxw-1 {
			return prefix + "…"
		}
	}
	return "…"
}

// treeWriter remembers the first write error.
type treeWriter struct {
	w   io.Writer
	err error
}

func (pr *treeWriter) styled(s string, c *color.Color) {
	if pr.err != nil {
		return
	}
	if c == nil {
		_, pr.err = io.WriteString(pr.w, s)
		return
	}
	_, pr.err = c.Fprint(pr.w, s)
}

func (pr *treeWriter) newline() {
	pr.styled("\n", nil)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.MaxLabelWidth parameter accordingly. Colors are switched
// on for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{MaxLabelWidth: DefaultMaxLabelWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 120 {
				config.MaxLabelWidth = 40
			} else if w < 40 {
				config.MaxLabelWidth = 10
			}
		}
	}
	tracer().Debugf("console: setting max label width to %d en", config.MaxLabelWidth)
	return config
}
