package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/spektr-org/divestat/config"
	"github.com/spektr-org/divestat/dive"
	"github.com/spektr-org/divestat/engine"
	"github.com/spektr-org/divestat/helpers"
	"github.com/spektr-org/divestat/i18n"
)

// globalFlags override the environment preferences.
type globalFlags struct {
	units   string
	locale  string
	verbose bool
}

// env bundles what every subcommand needs.
type env struct {
	registry *engine.Registry
	printer  *message.Printer
	logger   *logrus.Logger
}

func newRootCommand() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "divestat",
		Short:         "Dive log statistics",
		Long:          "divestat groups the dives of a CSV dive log by date, depth, dive mode or buddy.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.units, "units", "", "length unit: metric or imperial (default $DIVESTAT_LENGTH_UNIT or metric)")
	root.PersistentFlags().StringVar(&flags.locale, "locale", "", "label language, e.g. de-DE (default $DIVESTAT_LOCALE or en-US)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newTypesCommand(&flags), newBinCommand(&flags))
	return root
}

// setup resolves preferences (flags over environment) and builds the registry.
func setup(cmd *cobra.Command, flags *globalFlags) (*env, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if flags.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	prefs, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.units != "" {
		prefs.LengthUnit = flags.units
	}
	if flags.locale != "" {
		prefs.Locale = flags.locale
	}

	src, err := prefs.Units()
	if err != nil {
		return nil, err
	}
	tag := prefs.Tag()
	logger.WithFields(logrus.Fields{
		"units":  src.LengthUnit(),
		"locale": tag,
	}).Debug("🔧 divestat: preferences")

	return &env{
		registry: engine.NewRegistry(engine.WithUnits(src), engine.WithLogger(logger)),
		printer:  i18n.Printer(tag),
		logger:   logger,
	}, nil
}

func newTypesCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List statistic types and their binners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, t := range e.registry.Types() {
				fmt.Fprintf(out, "%d  %s\n", i, t.Name(e.printer))
				names := engine.BinnerNames(t, e.printer)
				if len(names) < 2 {
					continue
				}
				for j, name := range names {
					fmt.Fprintf(out, "   %d  %s\n", j, name)
				}
			}
			return nil
		},
	}
}

type binOptions struct {
	file   string
	typ    int
	binner int
	counts bool
	format string

	modes   []string
	buddies []string
	since   string
	until   string
}

const dateFlagLayout = "2006-01-02"

// filter turns the selection flags into an engine.Filter.
func (o binOptions) filter() (engine.Filter, error) {
	f := engine.Filter{Buddies: o.buddies}
	for _, name := range o.modes {
		m, ok := dive.LookupMode(name)
		if !ok {
			return f, errors.Errorf("invalid --mode %q (want oc, ccr, pscr or freedive)", name)
		}
		f.Modes = append(f.Modes, m)
	}
	var err error
	if o.since != "" {
		if f.Since, err = time.Parse(dateFlagLayout, o.since); err != nil {
			return f, errors.Wrap(err, "invalid --since")
		}
	}
	if o.until != "" {
		if f.Until, err = time.Parse(dateFlagLayout, o.until); err != nil {
			return f, errors.Wrap(err, "invalid --until")
		}
	}
	return f, nil
}

func newBinCommand(flags *globalFlags) *cobra.Command {
	var opts binOptions

	cmd := &cobra.Command{
		Use:   "bin",
		Short: "Group the dives of a CSV log",
		Example: `  divestat bin --file log.csv --type 0 --binner 2
  divestat bin --file log.csv --type 1 --binner 1 --counts --format csv
  divestat bin --file log.csv --type 3 --locale de-DE --format pretty
  divestat bin --file log.csv --type 1 --mode ccr,pscr --since 2021-01-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			return runBin(cmd, e, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to CSV dive log (required)")
	cmd.Flags().IntVarP(&opts.typ, "type", "t", 0, "statistic type index (see `divestat types`)")
	cmd.Flags().IntVarP(&opts.binner, "binner", "b", 0, "binner index; out of range selects the first")
	cmd.Flags().BoolVar(&opts.counts, "counts", false, "only count dives per bin")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text, json, pretty, csv")
	cmd.Flags().StringSliceVar(&opts.modes, "mode", nil, "only dives in these modes (oc, ccr, pscr, freedive)")
	cmd.Flags().StringSliceVar(&opts.buddies, "buddy", nil, "only dives with one of these buddies or guides")
	cmd.Flags().StringVar(&opts.since, "since", "", "only dives on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.until, "until", "", "only dives before this date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runBin(cmd *cobra.Command, e *env, opts binOptions) error {
	filter, err := opts.filter()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return errors.Wrap(err, "failed to read dive log")
	}
	records, _, err := helpers.ParseCSV(data, e.logger)
	if err != nil {
		return err
	}
	e.logger.WithField("dives", len(records)).Debug("📊 divestat: loaded dive log")

	res, err := e.registry.Execute(engine.Query{
		Type:   opts.typ,
		Binner: opts.binner,
		Counts: opts.counts,
		Filter: filter,
	}, dive.Dives(records), e.printer)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), res, opts.format, e.printer)
}
