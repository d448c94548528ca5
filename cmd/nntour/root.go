package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nntour/tsp"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// Execute is the entry point to running the CLI
func Execute(version string) {
	input := new(Input)
	rootCmd := createRootCommand(input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "nntour [instance.yaml]",
		Short:        "Build a nearest-neighbour TSP tour from a distance matrix (use - or no argument for stdin).",
		Args:         cobra.MaximumNArgs(1),
		RunE:         newRunCommand(input),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().IntVarP(&input.start, "start", "s", tsp.DefaultStartCity, "city the tour starts at (overrides the instance's start)")
	rootCmd.Flags().BoolVar(&input.open, "open", false, "score the tour as an open path instead of a closed cycle")
	rootCmd.Flags().StringVarP(&input.output, "output", "o", outputText, "output format: text or yaml")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.workdir, "directory", "C", ".", "working directory")
	return rootCmd
}

func newRunCommand(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			input.instancePath = args[0]
		}
		if input.output != outputText && input.output != outputYAML {
			return errors.Errorf("unknown output format %q", input.output)
		}
		logger := newLogger(cmd.ErrOrStderr(), input.verbose)

		inst, err := loadInstance(cmd.InOrStdin(), input.InstancePath())
		if err != nil {
			return err
		}
		logger.Debugf("loaded instance %q with %d rows", inst.Name, len(inst.Matrix))

		start := input.start
		if !cmd.Flags().Changed("start") && inst.Start != nil {
			start = *inst.Start
		}

		report, err := solve(inst, start, !input.open, logger)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), input.output, report)
	}
}

// newLogger builds a logrus logger writing to w; colours are enabled only when
// w is a terminal.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	colors := false
	if f, ok := w.(*os.File); ok {
		colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: !colors,
		ForceColors:   colors,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadInstance(stdin io.Reader, path string) (*Instance, error) {
	if path == "-" {
		return ReadInstance(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "unable to open instance %s", path)
	}
	defer f.Close()

	inst, err := ReadInstance(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "instance file %s", path)
	}
	return inst, nil
}

// solve wires the instance into a tsp.MatrixProblem and runs the optimizer.
func solve(inst *Instance, start int, closed bool, logger log.FieldLogger) (*Report, error) {
	dist, err := inst.Dense()
	if err != nil {
		return nil, errors.WithMessage(err, "building distance matrix")
	}

	eval := func(tour []int) (float64, error) { return tsp.PathCost(dist, tour) }
	if closed {
		eval = func(tour []int) (float64, error) { return tsp.CycleCost(dist, tour) }
	}
	problem, err := tsp.NewMatrixProblem(dist, eval)
	if err != nil {
		return nil, errors.WithMessagef(err, "instance %q", inst.Name)
	}

	optimizer := tsp.NewNearestNeighbor(
		tsp.WithStartCity(start),
		tsp.WithLogger(logger.WithField("instance", inst.Name)),
	)
	res, err := optimizer.Optimize(problem, nil)
	if err != nil {
		return nil, errors.WithMessagef(err, "instance %q", inst.Name)
	}

	return &Report{
		Name:   inst.Name,
		Start:  start,
		Closed: closed,
		Tour:   res.Tour,
		Cost:   res.Cost,
	}, nil
}

func writeReport(w io.Writer, format string, report *Report) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding report")
		}
		return enc.Close()
	}
	_, err := fmt.Fprintf(w, "tour: %s\ncost: %g\n", tsp.FormatTour(report.Tour), report.Cost)
	return err
}
