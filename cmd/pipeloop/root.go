package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/internal/logger"
)

// options holds the persistent flags and the configuration they resolve to.
type options struct {
	configPath string
	inputPath  string
	useStore   bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pipeloop",
		Short: "Solve pipe-maze loop puzzles",
		Long: `Find the closed pipe loop through the start tile of a maze, then report
how far its farthest tile is from the start and how many tiles it encloses.

Examples:
  pipeloop solve -i input.txt
  pipeloop enclosed -i - < input.txt
  pipeloop render -i input.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "YAML configuration file")
	flags.StringVarP(&opts.inputPath, "input", "i", "", `puzzle input file, "-" for stdin (default from config)`)
	flags.BoolVar(&opts.useStore, "store", false, "look up and save answers in the solution store")

	rootCmd.AddCommand(
		newStepsCmd(opts),
		newEnclosedCmd(opts),
		newSolveCmd(opts),
		newRenderCmd(opts),
	)
	return rootCmd
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input") {
		cfg.Input.Path = o.inputPath
	}
	if o.useStore {
		cfg.Store.Enabled = true
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		return err
	}
	o.cfg = cfg
	logger.Debug("configuration loaded", "config", o.configPath, "input", cfg.Input.Path, "store", cfg.Store.Enabled)
	return nil
}

// readInput returns the configured puzzle text, reading stdin for "-".
func (o *options) readInput(cmd *cobra.Command) (string, error) {
	path := o.cfg.Input.Path
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		return "", fmt.Errorf("no input file given")
	case "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	logger.Debug("input read", "path", path, "bytes", len(data))
	return string(data), nil
}
