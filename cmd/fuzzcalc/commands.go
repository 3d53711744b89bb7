package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fuzzy"
	"github.com/npillmayer/fuzzy/levelcut"
	"github.com/npillmayer/fuzzy/tnorm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// options shared by all subcommands.
type options struct {
	configFile string
	a, b       string
	xs         []float64
	dot        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "fuzzcalc [subcommand]",
		Short:        "fuzzcalc computes with fuzzy numbers",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "TOML file with default settings")
	pf.StringVar(&opts.a, "a", "", "first fuzzy number, as x:mu,x:mu,... or a crisp number")
	pf.Int("levels", fuzzy.DefaultResolution, "number of alpha levels, 0 for native levels")
	pf.String("tnorm", "min", "t-norm: "+strings.Join(tnorm.Names(), ", "))
	pf.Float64Slice("param", nil, "parameters of a parametric t-norm")
	pf.String("pairing", "diagonal", "pairing of level-cuts: diagonal or full")
	pf.Bool("no-color", false, "disable colored output")

	root.AddCommand(
		newOpCmd(opts, fuzzy.OpAdd, "add", "Add two fuzzy numbers"),
		newOpCmd(opts, fuzzy.OpSubtract, "sub", "Subtract fuzzy number b from a"),
		newEvalCmd(opts),
		newCutsCmd(opts),
		newTNormsCmd(),
	)
	return root
}

// setup loads the settings for a command run.
func setup(cmd *cobra.Command, opts *options) (settings, fuzzy.Config, error) {
	s, err := loadSettings(opts.configFile)
	if err != nil {
		return s, fuzzy.Config{}, err
	}
	if err = s.override(cmd.Flags()); err != nil {
		return s, fuzzy.Config{}, err
	}
	cfg, err := s.config()
	return s, cfg, err
}

func newOpCmd(opts *options, op fuzzy.Operator, use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			a, err := parseSet(opts.a, cfg)
			if err != nil {
				return errors.Wrap(err, "--a")
			}
			b, err := parseSet(opts.b, cfg)
			if err != nil {
				return errors.Wrap(err, "--b")
			}
			result, err := fuzzy.Apply(op, a, b, cfg)
			if err != nil {
				return errors.Wrapf(err, "%s", op)
			}
			if opts.dot {
				fuzzy.Set2Dot(result, cmd.OutOrStdout())
				return nil
			}
			title := fmt.Sprintf("%s with t-norm %s, %s pairing", op, cfg.TNorm.Name(), cfg.Pairing)
			newPrinter(cmd.OutOrStdout(), s.Color).set(title, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.b, "b", "", "second fuzzy number, as x:mu,x:mu,... or a crisp number")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "output the component structure in Graphviz DOT format")
	return cmd
}

func newEvalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the membership function of a fuzzy number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			a, err := parseSet(opts.a, cfg)
			if err != nil {
				return errors.Wrap(err, "--a")
			}
			if len(opts.xs) == 0 {
				return errors.New("eval: no --x given")
			}
			p := newPrinter(cmd.OutOrStdout(), s.Color)
			for _, x := range opts.xs {
				p.membership(levelcut.Breakpoint{X: x, Mu: a.Membership(x)})
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&opts.xs, "x", nil, "values to evaluate")
	return cmd
}

func newCutsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cuts",
		Short: "Show the level-cuts of a fuzzy number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			a, err := parseSet(opts.a, cfg)
			if err != nil {
				return errors.Wrap(err, "--a")
			}
			if opts.dot {
				fuzzy.Set2Dot(a, cmd.OutOrStdout())
				return nil
			}
			p := newPrinter(cmd.OutOrStdout(), s.Color)
			p.cuts(a.Cuts())
			fmt.Fprintf(cmd.OutOrStdout(), "  %8s  %s\n", "support", a.Support())
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "output the component structure in Graphviz DOT format")
	return cmd
}

func newTNormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tnorms",
		Short: "List the available t-norms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tnorm.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
