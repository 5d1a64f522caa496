package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eng618/bobsvg/cmd/build"
	"github.com/eng618/bobsvg/cmd/validate"
	"github.com/eng618/bobsvg/pkg/bob"
	"github.com/eng618/bobsvg/pkg/common"
	"github.com/eng618/bobsvg/pkg/settings"
)

var (
	// Global flags
	cfgFile    string
	verbose    bool
	workers    string
	workingDir string

	// Conversion flags for the root command. cmd/build does not read
	// them; it converts every file with settings.Default().
	outputPath  string
	fontFamily  string
	fontSize    float64
	strokeWidth float64
	scale       float64
	textWidth   float64
	textHeight  float64

	// WorkersCount is the parsed --workers value. cmd/build does not read
	// it; it parses the inherited --workers flag itself.
	WorkersCount int
)

// rootCmd represents the base command: convert a single ASCII/Unicode
// diagram into an SVG document.
var rootCmd = &cobra.Command{
	Use:   "bobsvg [input]",
	Short: "Convert ASCII and Unicode box diagrams into SVG",
	Long: `bobsvg reads a text diagram made of lines, arrows, boxes and circles
drawn with ordinary characters and box-drawing glyphs, and renders it as a
standalone SVG document.

It provides commands for:
  - Converting a single diagram to SVG (the root command)
  - Converting a batch of diagram files concurrently ("build")
  - Diagnosing a diagram's recognized vs. unrecognized characters ("validate")`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := parseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Verbose("Workers: %d (from flag: %s)", WorkersCount, workers)

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}

		svgDoc, err := bob.ToSVG(input, settingsFromFlags())
		if err != nil {
			return fmt.Errorf("converting diagram: %w", err)
		}

		// An output write failure exits with status 2, distinct from the
		// status 1 that Execute uses for argument and read errors.
		if outputPath == "" || outputPath == "-" {
			if _, err := fmt.Fprint(os.Stdout, svgDoc); err != nil {
				common.Error("writing stdout: %v", err)
				os.Exit(2)
			}
			return nil
		}
		if err := os.WriteFile(outputPath, []byte(svgDoc), 0o644); err != nil {
			common.Error("writing %s: %v", outputPath, err)
			os.Exit(2)
		}
		common.Verbose("Wrote %s", outputPath)
		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// settingsFromFlags builds a Settings value from Default(), overridden by
// a config file or BOBSVG_* environment variable, in turn overridden by
// an explicitly set CLI flag — viper's usual precedence order, with
// cobra's flags bound on top of it.
func settingsFromFlags() settings.Settings {
	s := settings.Default()
	if v := viper.GetString("font-family"); v != "" {
		s.FontFamily = v
	}
	if v := viper.GetFloat64("font-size"); v > 0 {
		s.FontSize = v
	}
	if v := viper.GetFloat64("stroke-width"); v > 0 {
		s.StrokeWidth = v
	}
	if v := viper.GetFloat64("scale"); v > 0 {
		s.Scale = v
	}
	if v := viper.GetFloat64("text-width"); v > 0 {
		s.TextWidth = v
	}
	if v := viper.GetFloat64("text-height"); v > 0 {
		s.TextHeight = v
	}
	return s
}

// initConfig reads a .bobsvg.yaml config file (from --config, $HOME, or
// the working directory) and BOBSVG_*-prefixed environment variables
// beneath the conversion flags registered below.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bobsvg")
	}

	viper.SetEnvPrefix("BOBSVG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		common.Verbose("Using config file: %s", viper.ConfigFileUsed())
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.bobsvg.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full')")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for relative paths (default: current directory)")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().StringVar(&fontFamily, "font-family", "", "SVG text font family (default: arial)")
	rootCmd.Flags().Float64Var(&fontSize, "font-size", 0, "SVG text font size in px")
	rootCmd.Flags().Float64Var(&strokeWidth, "stroke-width", 0, "line stroke width in px")
	rootCmd.Flags().Float64Var(&scale, "scale", 0, "uniform scale factor applied to cell geometry")
	rootCmd.Flags().Float64Var(&textWidth, "text-width", 0, "cell width in px")
	rootCmd.Flags().Float64Var(&textHeight, "text-height", 0, "cell height in px")

	for _, name := range []string{"font-family", "font-size", "stroke-width", "scale", "text-width", "text-height"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(build.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
}

// parseWorkers parses the workers flag value.
// Accepts: "full" -> NumCPU(), "half" -> NumCPU()/2, or an integer string.
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
