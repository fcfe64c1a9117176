package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-bintree/Trees"
)

// cliT holds the commands and the flag state they share.
type cliT struct {
	Root  *cobra.Command
	Build *cobra.Command
	Props *cobra.Command
	Edges *cobra.Command
	Gen   *cobra.Command

	log *zap.SugaredLogger

	verbose bool
	letters bool
	compact bool
	index   bool
	delim   string
	format  string
	dot     bool
	height  int
	perfect bool
	minHeap bool
	seed    uint64
}

func newCLI() *cliT {
	c := &cliT{log: zap.NewNop().Sugar()}

	c.Root = &cobra.Command{
		Use:               "bintree [command] (flags)",
		Short:             "binary tree builder and inspector",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	c.Build = &cobra.Command{
		Use:   "build <values>",
		Short: "build a tree from a value list and print it",
		Long: `
Build a tree from a level-order list such as "[7, 3, 2, None, 1]" and print it.
Brackets are optional and entries may be separated by commas or spaces. Gaps
are written None, null, nil or _. The list is dense (index i has its children
at 2i+1 and 2i+2) unless --compact is given.
`,
		RunE: c.runBuild,
	}
	c.Props = &cobra.Command{
		Use:   "props <values>",
		Short: "print the structural properties of a tree",
		RunE:  c.runProps,
	}
	c.Edges = &cobra.Command{
		Use:   "edges <values>",
		Short: "print the parent to child edges of a tree",
		Long: `
Print one line per edge, naming nodes by their breadth first visiting order.
With --dot the tree is written in the Graphviz DOT language instead.
`,
		RunE: c.runEdges,
	}
	c.Gen = &cobra.Command{
		Use:       "gen <tree|bst|heap>",
		Short:     "generate a random tree of a given height",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"tree", "bst", "heap"},
		RunE:      c.runGen,
	}
	c.Root.AddCommand(c.Build, c.Props, c.Edges, c.Gen)

	c.Root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log to stderr")
	c.Root.PersistentFlags().BoolVar(&c.letters, "letters", false, "values are letters instead of ints")
	for _, cmd := range []*cobra.Command{c.Build, c.Props, c.Edges} {
		cmd.Flags().BoolVar(&c.compact, "compact", false, "read the list in the compact form, gaps only below nodes")
	}
	for _, cmd := range []*cobra.Command{c.Build, c.Gen} {
		cmd.Flags().BoolVarP(&c.index, "index", "i", false, "prefix labels with level-order indices")
		cmd.Flags().StringVar(&c.delim, "delimiter", "-", "between index and value with --index")
		cmd.Flags().StringVarP(&c.format, "format", "f", "pretty", "output: pretty, dense or compact")
	}
	c.Edges.Flags().BoolVar(&c.dot, "dot", false, "write Graphviz DOT")
	c.Gen.Flags().IntVar(&c.height, "height", 3, fmt.Sprintf("exact height, 0 to %d", Trees.MaxHeight))
	c.Gen.Flags().BoolVar(&c.perfect, "perfect", false, "fill every level")
	c.Gen.Flags().BoolVar(&c.minHeap, "min", false, "min heap instead of max heap")
	c.Gen.Flags().Uint64Var(&c.seed, "seed", 0, "random seed, random if unset")
	return c
}

func (c *cliT) setup(cmd *cobra.Command, args []string) error {
	if !c.verbose {
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	c.log = l.Sugar().With("command", cmd.Name())
	return nil
}

// view is what the commands need of a tree, whatever its value type.
type view interface {
	Pretty(opts ...Trees.PrintOption) string
	Props() map[string]any
	Graph() Trees.Graph
	Dense() (string, error)
	Compact() string
}

type treeView[T constraints.Ordered] struct {
	root *Trees.Node[T]
}

func (v treeView[T]) Pretty(opts ...Trees.PrintOption) string { return v.root.Pretty(opts...) }
func (v treeView[T]) Props() map[string]any                   { return v.root.Properties().Map() }
func (v treeView[T]) Graph() Trees.Graph                      { return Trees.Export[T](v.root) }
func (v treeView[T]) Compact() string                         { return Trees.FormatSlots(v.root.Values2()) }

func (v treeView[T]) Dense() (string, error) {
	vs, err := v.root.Values()
	if err != nil {
		return "", err
	}
	return Trees.FormatSlots(vs), nil
}

func build[T constraints.Ordered](c *cliT, s string, parse func(string) ([]Trees.Slot[T], error)) (view, error) {
	vs, err := parse(s)
	if err != nil {
		return nil, errors.Wrap(err, "parsing values")
	}
	mk := Trees.Build[T]
	if c.compact {
		mk = Trees.Build2[T]
	}
	root, err := mk(vs)
	if err != nil {
		return nil, err
	}
	c.log.Debugw("built tree", "slots", len(vs), "compact", c.compact)
	return treeView[T]{root}, nil
}

// load the tree spelled by args.
func (c *cliT) load(args []string) (view, error) {
	s := strings.Join(args, " ")
	if c.letters {
		return build(c, s, Trees.ParseStrings)
	}
	return build(c, s, Trees.ParseInts)
}

// write v in the --format form.
func (c *cliT) write(w io.Writer, v view) error {
	var s string
	switch c.format {
	case "pretty":
		var opts []Trees.PrintOption
		if c.index {
			opts = append(opts, Trees.WithIndex(), Trees.WithDelimiter(c.delim))
		}
		s = v.Pretty(opts...)
	case "dense":
		var err error
		if s, err = v.Dense(); err != nil {
			return err
		}
	case "compact":
		s = v.Compact()
	default:
		return errors.Newf("unknown format %q", c.format)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

func (c *cliT) runBuild(cmd *cobra.Command, args []string) error {
	v, err := c.load(args)
	if err != nil {
		return err
	}
	return c.write(cmd.OutOrStdout(), v)
}

func (c *cliT) runProps(cmd *cobra.Command, args []string) error {
	v, err := c.load(args)
	if err != nil {
		return err
	}
	m := v.Props()
	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetHeader([]string{"Property", "Value"})
	for _, k := range Trees.PropertyNames {
		// The value bounds are absent for an empty tree.
		if val, ok := m[k]; ok {
			tbl.Append([]string{k, fmt.Sprint(val)})
		}
	}
	tbl.Render()
	return nil
}

func (c *cliT) runEdges(cmd *cobra.Command, args []string) error {
	v, err := c.load(args)
	if err != nil {
		return err
	}
	g, out := v.Graph(), cmd.OutOrStdout()
	if c.dot {
		_, err = fmt.Fprintln(out, g.Dot())
		return err
	}
	for _, e := range g.Edges {
		fmt.Fprintf(out, "%d(%s) -> %d(%s) %s\n", e.Parent, g.Labels[e.Parent], e.Child, g.Labels[e.Child], e.Side)
	}
	return nil
}

func generate[T constraints.Ordered](g *Trees.Generator[T], kind string, height int, perfect, minHeap bool) (view, error) {
	var root *Trees.Node[T]
	var err error
	switch kind {
	case "tree":
		root, err = g.Tree(height, perfect)
	case "bst":
		root, err = g.BST(height, perfect)
	case "heap":
		root, err = g.Heap(height, !minHeap, perfect)
	default:
		return nil, errors.Newf("unknown tree kind %q, want tree, bst or heap", kind)
	}
	if err != nil {
		return nil, err
	}
	return treeView[T]{root}, nil
}

func (c *cliT) runGen(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("seed") {
		c.seed = rand.Uint64()
	}
	c.log.Debugw("generating", "kind", args[0], "height", c.height, "perfect", c.perfect, "seed", c.seed)
	var v view
	var err error
	if c.letters {
		v, err = generate(Trees.NewGenerator(Trees.Letters(), c.seed), args[0], c.height, c.perfect, c.minHeap)
	} else {
		v, err = generate(Trees.NewGenerator(Trees.Ints(0), c.seed), args[0], c.height, c.perfect, c.minHeap)
	}
	if err != nil {
		return err
	}
	return c.write(cmd.OutOrStdout(), v)
}
