package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harvestam/compound/internal/calculation"
	"github.com/harvestam/compound/internal/config"
	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
	"github.com/harvestam/compound/internal/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type calculateOptions struct {
	configFile string
	initial    float64
	monthly    float64
	rate       float64
	variance   float64
	years      float64
	frequency  string
	formats    []string
	lang       string
	outputDir  string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "compound",
		Short:         "Compound interest projection calculator",
		Long:          "Projects the growth of an initial amount and monthly contributions under base, pessimistic and optimistic rates.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newCalculateCmd(stdout, stderr))
	root.AddCommand(newExampleConfigCmd(stdout))
	root.AddCommand(newFormatsCmd(stdout))
	return root
}

func newCalculateCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run the simulation and write the requested reports",
		Example: `  compound calculate --initial 1000000 --monthly 50000 --rate 7 --variance 1 --years 10
  compound calculate --config simulation.yaml --format console --format pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, opts, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	f.Float64Var(&opts.initial, "initial", 0, "initial amount")
	f.Float64Var(&opts.monthly, "monthly", 0, "monthly contribution")
	f.Float64Var(&opts.rate, "rate", 0, "annual interest rate in percent")
	f.Float64Var(&opts.variance, "variance", 0, "rate variance in percent (± applied to the rate)")
	f.Float64Var(&opts.years, "years", 1, "duration in years")
	f.StringVar(&opts.frequency, "frequency", "monthly", "compounding frequency: "+strings.Join(domain.FrequencyKeys(), ", "))
	f.StringSliceVarP(&opts.formats, "format", "f", nil, "report formats (repeatable): "+strings.Join(output.AvailableFormatterNames(), ", "))
	f.StringVar(&opts.lang, "lang", "", "report language: "+strings.Join(i18n.Supported(), ", "))
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for report files")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runCalculate(cmd *cobra.Command, opts *calculateOptions, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, opts.verbose)

	cfg, err := resolveConfiguration(cmd, opts)
	if err != nil {
		return err
	}
	lang := i18n.Parse(cfg.Language)

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewZerologLogger(logger))
	results := engine.RunScenarios(cfg.Investment.Parameters())

	for _, format := range cfg.Output.Formats {
		f := output.NewFormatter(format, lang)
		if f == nil {
			return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
		}
		if f.Name() == "console" {
			data, err := f.Format(results)
			if err != nil {
				return err
			}
			if _, err := stdout.Write(data); err != nil {
				return err
			}
			continue
		}
		path, err := output.WriteFormatted(f, results, cfg.Output.Directory)
		if err != nil {
			if errors.Is(err, output.ErrNoSimulation) {
				logger.Warn().Str("format", f.Name()).Msg(i18n.T(lang).RunFirst)
			}
			return fmt.Errorf("%s report: %w", f.Name(), err)
		}
		logger.Info().Str("format", f.Name()).Str("path", path).Msg("report written")
	}
	return nil
}

// resolveConfiguration loads the config file when given, then applies any
// flags the user set explicitly on top of it.
func resolveConfiguration(cmd *cobra.Command, opts *calculateOptions) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg := &domain.Configuration{}
	if opts.configFile != "" {
		loaded, err := parser.LoadFromFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	fromFile := opts.configFile != ""
	set := func(name string) bool { return !fromFile || flags.Changed(name) }

	if set("initial") {
		cfg.Investment.Initial = opts.initial
	}
	if set("monthly") {
		cfg.Investment.MonthlyContribution = opts.monthly
	}
	if set("rate") {
		cfg.Investment.AnnualRate = opts.rate
	}
	if set("variance") {
		cfg.Investment.Variance = opts.variance
	}
	if set("years") {
		cfg.Investment.Years = opts.years
	}
	if set("frequency") {
		cfg.Investment.Frequency = opts.frequency
	}
	if flags.Changed("format") {
		cfg.Output.Formats = opts.formats
	}
	if flags.Changed("lang") {
		cfg.Language = opts.lang
	}
	if flags.Changed("output-dir") {
		cfg.Output.Directory = opts.outputDir
	}

	config.ApplyDefaults(cfg)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func newExampleConfigCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "simulation.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Example configuration written to %s\n", path)
			return nil
		},
	}
}

func newFormatsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available report formats",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(stdout, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().
		Logger()
}
