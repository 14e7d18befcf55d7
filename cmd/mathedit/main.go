// Command mathedit exercises the formula engine from the command
// line: parse markup, reserialize it in either mode, derive styled
// decoration spans, and apply style commands to selections.
//
// Node ids are assigned sequentially in document order (n1, n2, ...)
// on every parse, so the ids printed by `inspect` are valid selection
// arguments for the style commands on the same file content.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dshills/mathedit/internal/formula"
	"github.com/dshills/mathedit/internal/palette"
	"github.com/dshills/mathedit/internal/parser"
	"github.com/dshills/mathedit/internal/ranges"
	"github.com/dshills/mathedit/internal/transform"
)

var version = "dev"

// CLI is the mathedit command tree.
var CLI struct {
	Palette string `help:"Palette TOML file." type:"path"`

	Ast     AstCmd     `cmd:"" help:"Parse markup and print its structural serialization."`
	Render  RenderCmd  `cmd:"" help:"Parse markup and print its renderable serialization."`
	Inspect InspectCmd `cmd:"" help:"Print the node tree with ids."`
	Spans   SpansCmd   `cmd:"" help:"Print the styled decoration spans."`
	Color   ColorCmd   `cmd:"" help:"Color a selection of nodes."`
	Box     BoxCmd     `cmd:"" help:"Box a selection of nodes."`
	Brace   BraceCmd   `cmd:"" help:"Brace a selection of nodes."`
	Strike  StrikeCmd  `cmd:"" help:"Strike a selection of nodes."`
	Watch   WatchCmd   `cmd:"" help:"Re-derive spans whenever the file changes."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type cmdContext struct {
	palette *palette.Palette
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mathedit"),
		kong.Description("Formula markup engine: dual-mode serialization, styled ranges, style commands."),
		kong.UsageOnError(),
	)

	pal, err := palette.Load(CLI.Palette)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&cmdContext{palette: pal})
	ctx.FatalIfErrorf(err)
}

// loadDocument parses a markup file with sequential ids.
func loadDocument(path string) (*formula.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := parser.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return transform.AssignIDs(doc, transform.SequentialIDs("n")), nil
}

func parseRun(nodes []string) []formula.NodeID {
	run := make([]formula.NodeID, len(nodes))
	for i, id := range nodes {
		run[i] = formula.NodeID(id)
	}
	return run
}

// AstCmd prints the ModeAST serialization.
type AstCmd struct {
	File string `arg:"" type:"existingfile" help:"Markup file."`
}

func (c *AstCmd) Run(*cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	fmt.Println(doc.Latex(formula.ModeAST))
	return nil
}

// RenderCmd prints the ModeRender serialization.
type RenderCmd struct {
	File string `arg:"" type:"existingfile" help:"Markup file."`
}

func (c *RenderCmd) Run(*cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	fmt.Println(doc.Latex(formula.ModeRender))
	return nil
}

// InspectCmd prints each node with its id, depth-indented.
type InspectCmd struct {
	File string `arg:"" type:"existingfile" help:"Markup file."`
}

func (c *InspectCmd) Run(*cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	for _, n := range doc.Nodes() {
		inspect(n, 0)
	}
	return nil
}

func inspect(n formula.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	id := n.NodeID()
	if id == "" {
		fmt.Printf("%s- %T\n", indent, n)
	} else {
		fmt.Printf("%s- %s %T %q\n", indent, id, n, n.Latex(formula.ModeAST))
	}
	for _, c := range n.Children() {
		inspect(c, depth+1)
	}
}

// SpansCmd prints the flattened styled spans, sorted by start offset.
type SpansCmd struct {
	File string `arg:"" type:"existingfile" help:"Markup file."`
	JSON bool   `help:"Emit spans as JSON."`
}

func (c *SpansCmd) Run(cc *cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	return printSpans(doc, cc.palette, c.JSON)
}

func printSpans(doc *formula.Document, pal *palette.Palette, asJSON bool) error {
	spans := ranges.Flatten(ranges.FromDocument(doc))
	for i := range spans {
		if spans[i].Hints.Color != "" {
			spans[i].Hints.Color = pal.Resolve(spans[i].Hints.Color)
		}
	}
	if asJSON {
		out, err := json.MarshalIndent(spans, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	for _, s := range spans {
		fmt.Printf("[%d,%d) depth=%d id=%s", s.From, s.To, s.Depth, s.ID)
		if s.Hints.Color != "" {
			fmt.Printf(" color=%s", s.Hints.Color)
		}
		if s.Hints.Tooltip != "" {
			fmt.Printf(" tooltip=%q", s.Hints.Tooltip)
		}
		fmt.Println()
	}
	return nil
}

// ColorCmd wraps a selection in a color and prints the new markup.
type ColorCmd struct {
	File  string   `arg:"" type:"existingfile" help:"Markup file."`
	Nodes []string `required:"" help:"Selection: contiguous sibling node ids, in order."`
	Value string   `name:"color" default:"red" help:"Palette color name or hex value."`
}

func (c *ColorCmd) Run(*cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	out, id := transform.ApplyColor(doc, parseRun(c.Nodes), c.Value)
	if id == "" {
		return fmt.Errorf("selection %v is not a contiguous sibling run", c.Nodes)
	}
	fmt.Println(out.Latex(formula.ModeAST))
	return nil
}

// BoxCmd wraps a selection in a box and prints the new markup.
type BoxCmd struct {
	File   string   `arg:"" type:"existingfile" help:"Markup file."`
	Nodes  []string `required:"" help:"Selection: contiguous sibling node ids, in order."`
	Border string   `help:"Border color; palette default when empty."`
}

func (c *BoxCmd) Run(cc *cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	border := c.Border
	if border == "" {
		border = cc.palette.DefaultBorder
	}
	out, id := transform.ApplyBox(doc, parseRun(c.Nodes), border)
	if id == "" {
		return fmt.Errorf("selection %v is not a contiguous sibling run", c.Nodes)
	}
	fmt.Println(out.Latex(formula.ModeAST))
	return nil
}

// BraceCmd braces a selection and prints the new markup.
type BraceCmd struct {
	File  string   `arg:"" type:"existingfile" help:"Markup file."`
	Nodes []string `required:"" help:"Selection: contiguous sibling node ids, in order."`
	Under bool     `help:"Underbrace instead of overbrace."`
}

func (c *BraceCmd) Run(*cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	out, id := transform.ToggleBrace(doc, parseRun(c.Nodes), !c.Under)
	if id == "" {
		return fmt.Errorf("selection %v is not a contiguous sibling run", c.Nodes)
	}
	fmt.Println(out.Latex(formula.ModeAST))
	return nil
}

// StrikeCmd strikes a selection and prints the new markup.
type StrikeCmd struct {
	File  string   `arg:"" type:"existingfile" help:"Markup file."`
	Nodes []string `required:"" help:"Selection: contiguous sibling node ids, in order."`
}

func (c *StrikeCmd) Run(*cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	out, id := transform.ApplyStrikethrough(doc, parseRun(c.Nodes))
	if id == "" {
		return fmt.Errorf("selection %v is not a contiguous sibling run", c.Nodes)
	}
	fmt.Println(out.Latex(formula.ModeAST))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (*VersionCmd) Run(*cmdContext) error {
	fmt.Printf("mathedit %s\n", version)
	return nil
}
