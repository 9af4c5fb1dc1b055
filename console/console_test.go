package console

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func plainPrinter(width int) *Printer {
	return NewPrinter(&Config{
		MaxLabelWidth: width,
		Context:       uax11.LatinContext,
	}, nil)
}

func TestFprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	root := bintree.Fork("root",
		bintree.Fork("a", bintree.NewLeaf("b"), nil),
		bintree.Fork("c", nil, bintree.NewLeaf("d")))
	var sb strings.Builder
	if err := Fprint(plainPrinter(20), &sb, root); err != nil {
		t.Fatal(err)
	}
	expected := `root
├─L a
│  └─L b
└─R c
   └─R d
`
	t.Logf("\n%s", sb.String())
	if sb.String() != expected {
		t.Errorf("unexpected tree rendering:\n%s", sb.String())
	}
}

func TestFprintEmpty(t *testing.T) {
	var sb strings.Builder
	if err := Fprint[int](plainPrinter(20), &sb, nil); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "<empty>\n" {
		t.Errorf("unexpected rendering of empty tree: %q", sb.String())
	}
}

func TestTruncateLabel(t *testing.T) {
	root := bintree.NewLeaf("abcdefghij")
	var sb strings.Builder
	if err := Fprint(plainPrinter(5), &sb, root); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "abcd…\n" {
		t.Errorf("expected label to be truncated to 'abcd…', got %q", sb.String())
	}
}

func TestColoredOutput(t *testing.T) {
	p := NewPrinter(&Config{MaxLabelWidth: 10, Colors: true}, nil)
	var sb strings.Builder
	if err := Fprint(p, &sb, bintree.NewLeaf(42)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "\x1b[") || !strings.Contains(sb.String(), "42") {
		t.Errorf("expected escape sequences around label, got %q", sb.String())
	}
}

func TestSharedPalette(t *testing.T) {
	palette := &Palette{Leaf: color.New(color.FgGreen)}
	colored := NewPrinter(&Config{MaxLabelWidth: 10, Colors: true}, palette)
	plain := NewPrinter(&Config{MaxLabelWidth: 10, Colors: false}, palette)
	leaf := bintree.NewLeaf(7)
	var sb strings.Builder
	if err := Fprint(colored, &sb, leaf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "\x1b[") {
		t.Errorf("expected first printer to stay colored, got %q", sb.String())
	}
	sb.Reset()
	if err := Fprint(plain, &sb, leaf); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "7\n" {
		t.Errorf("expected plain output from second printer, got %q", sb.String())
	}
	if palette.Leaf == colored.palette.Leaf || palette.Leaf == plain.palette.Leaf {
		t.Errorf("expected printers to hold their own colors")
	}
}
