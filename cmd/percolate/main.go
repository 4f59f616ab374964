// Package main is a small driver for the percolation package: it builds an
// n×n grid, opens a sequence of sites and prints one boolean.
//
// Usage:
//
//	percolate [n] [--site r,c ...] [--full r,c | --percolates] [--backwash-guard] [-v]
//
// Without --site the scripted demonstration sequence is opened on a 6×6
// grid and the fullness of (2,1) is printed.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/percolation"
)

const defaultSize = 6

var log = logrus.New()

// demoSites is opened when no --site flag is given.
var demoSites = []site{
	{1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6}, {5, 5},
	{4, 4}, {3, 4}, {2, 4}, {2, 3}, {2, 2}, {2, 1},
	{3, 1}, {4, 1}, {5, 1}, {5, 2}, {6, 2}, {5, 4},
}

type config struct {
	n          int
	sites      []site
	full       site
	percolates bool
	guard      bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.WithError(err).Error("percolate failed")
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		rawSites []string
		rawFull  string
		cfg      config
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "percolate [n]",
		Short: "Open sites on an n×n grid and report fullness or percolation",
		Example: "  percolate 8 -s 1,1 -s 2,1 --percolates\n" +
			"  percolate -- -3    # sizes starting with '-' go after --",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			// log is package-global: reset the level on every run
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.n = defaultSize
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("grid size %q: %w", args[0], err)
				}
				cfg.n = n
			}
			sites, err := parseSites(rawSites)
			if err != nil {
				return err
			}
			if len(sites) == 0 {
				sites = demoSites
			}
			cfg.sites = sites
			if cfg.full, err = parseSite(rawFull); err != nil {
				return err
			}

			return run(out, cfg)
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	flags := cmd.Flags()
	flags.StringArrayVarP(&rawSites, "site", "s", nil, "site to open as row,col (repeatable)")
	flags.StringVarP(&rawFull, "full", "f", "2,1", "site whose fullness is printed, as row,col")
	flags.BoolVarP(&cfg.percolates, "percolates", "p", false, "print whether the grid percolates instead")
	flags.BoolVar(&cfg.guard, "backwash-guard", false, "answer fullness without backwash through the bottom row")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every opened site to stderr")

	return cmd
}

// run opens cfg.sites and writes a single boolean to out.
func run(out io.Writer, cfg config) error {
	var opts []percolation.Option
	if cfg.guard {
		opts = append(opts, percolation.WithBackwashGuard())
	}
	g, err := percolation.New(cfg.n, opts...)
	if err != nil {
		return err
	}

	for i, s := range cfg.sites {
		if err := g.Open(s.row, s.col); err != nil {
			return fmt.Errorf("%s site %d,%d: %w", humanize.Ordinal(i+1), s.row, s.col, err)
		}
		log.WithFields(logrus.Fields{
			"step":       humanize.Ordinal(i + 1),
			"row":        s.row,
			"col":        s.col,
			"open":       humanize.Comma(int64(g.NumberOfOpenSites())),
			"percolates": g.Percolates(),
		}).Debug("opened site")
	}
	log.WithFields(logrus.Fields{
		"n":    cfg.n,
		"open": humanize.Comma(int64(g.NumberOfOpenSites())),
		"of":   humanize.Comma(int64(cfg.n) * int64(cfg.n)),
	}).Info("grid ready")

	if cfg.percolates {
		_, err = fmt.Fprintln(out, g.Percolates())
		return err
	}
	full, err := g.IsFull(cfg.full.row, cfg.full.col)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, full)

	return err
}
