package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/homier/probemap"
	"github.com/homier/probemap/internal/concordance"
)

type options struct {
	stopWords string
	output    string
	capacity  int
	hash      hashFlag
	verbose   bool
	stats     bool
}

func newRootCmd() *cobra.Command {
	opts := options{
		capacity: concordance.DefaultCapacity,
		hash:     hashFlag{name: "horner", fn: probemap.HornerHash},
	}

	cmd := &cobra.Command{
		Use:   "concordance [flags] INPUT",
		Short: "builds a word to line numbers index of a text file",
		Long: `Concordance lists every word of INPUT in alphabetical order together with
the lines it appears on. Words are lowercased and stripped of punctuation;
numbers and the words of the stop word file are left out.
`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	addFlags(cmd.Flags(), &opts)

	return cmd
}

func addFlags(f *pflag.FlagSet, opts *options) {
	f.StringVarP(&opts.stopWords, "stop", "s", "", "file of whitespace separated stop words")
	f.StringVarP(&opts.output, "out", "o", "", "write the report to this file instead of stdout")
	f.IntVar(&opts.capacity, "capacity", opts.capacity, "initial hash table capacity")
	f.Var(&opts.hash, "hash", "hash function: horner or xxhash")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&opts.stats, "stats", false, "print hash table statistics to stderr")
}

func run(cmd *cobra.Command, opts options, input string) error {
	if opts.capacity <= 0 {
		return fmt.Errorf("--capacity must be positive, got %d", opts.capacity)
	}

	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(log.WarnLevel)
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	c := concordance.New(
		concordance.WithCapacity(opts.capacity),
		concordance.WithHashFunc(opts.hash.fn),
		concordance.WithLogger(logger),
	)

	if opts.stopWords != "" {
		if err := c.LoadStopWords(opts.stopWords); err != nil {
			return err
		}
	}

	if err := c.LoadText(input); err != nil {
		return err
	}

	if opts.output != "" {
		if err := c.WriteFile(opts.output); err != nil {
			return err
		}
	} else {
		if _, err := c.WriteTo(cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if opts.stats {
		printStats(cmd.ErrOrStderr(), "stop words", c.StopWordStats())
		printStats(cmd.ErrOrStderr(), "entries", c.EntryStats())
	}

	return nil
}

func printStats(w io.Writer, name string, s probemap.Stats) {
	fmt.Fprintf(w, "%s: size=%d capacity=%d load=%.3f resizes=%d longest_probe=%d\n",
		name, s.Size, s.Capacity, s.LoadFactor, s.Resizes, s.LongestProbe)
}

// hashFlag selects a probemap.HashFunc by name.
type hashFlag struct {
	name string
	fn   probemap.HashFunc
}

var _ pflag.Value = (*hashFlag)(nil)

func (h *hashFlag) String() string {
	return h.name
}

func (h *hashFlag) Set(s string) error {
	switch s {
	case "horner":
		h.fn = probemap.HornerHash
	case "xxhash":
		h.fn = probemap.XXHash
	default:
		return fmt.Errorf("unknown hash %q, want horner or xxhash", s)
	}

	h.name = s

	return nil
}

func (h *hashFlag) Type() string {
	return "hash"
}
