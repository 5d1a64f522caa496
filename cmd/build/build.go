// Package build provides the command-line interface for converting a
// batch of diagram files to SVG concurrently.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/eng618/bobsvg/pkg/bob"
	"github.com/eng618/bobsvg/pkg/common"
	"github.com/eng618/bobsvg/pkg/settings"
	"github.com/eng618/bobsvg/pkg/ui"
)

var (
	inputGlob  string
	outputDir  string
	dryRun     bool
	strictMode bool
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Convert a batch of diagram files to SVG concurrently",
	Long: `build expands --input as a glob pattern, converts every matching file
to SVG using the worker count from --workers (or its inherited default),
and writes the results under --output-dir.

Examples:
  bobsvg build --input 'diagrams/*.bob'
  bobsvg build --input 'diagrams/*.txt' --output-dir out --workers full
  bobsvg build --input 'diagrams/*.txt' --dry-run`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&inputGlob, "input", "i", "", "glob pattern selecting diagram files (required)")
	buildCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory to write converted .svg files into")
	buildCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be converted without writing files")
	buildCmd.Flags().BoolVar(&strictMode, "strict", false, "fail the whole run if --input matches no files")
	buildCmd.MarkFlagRequired("input")
}

// GetCommand returns the build command.
func GetCommand() *cobra.Command {
	return buildCmd
}

type result struct {
	path string
	err  error
}

func runBuild(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob(inputGlob)
	if err != nil {
		return fmt.Errorf("invalid --input pattern %q: %w", inputGlob, err)
	}
	if len(matches) == 0 {
		if strictMode {
			return fmt.Errorf("--input %q matched no files", inputGlob)
		}
		common.Warning("--input %q matched no files", inputGlob)
		return nil
	}

	workerCount := resolveWorkers(cmd)
	common.Info("Converting %d file(s) with %d worker(s)...", len(matches), workerCount)

	spin := ui.NewSpinner(fmt.Sprintf("converting 0/%d", len(matches)))
	spin.Start()

	jobs := make(chan string)
	results := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- result{path: path, err: convertOne(path)}
			}
		}()
	}
	go func() {
		for _, m := range matches {
			jobs <- m
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	var failed []result
	done := 0
	for r := range results {
		done++
		spin.UpdateMessage("converting %d/%d", done, len(matches))
		if r.err != nil {
			failed = append(failed, r)
			spin.LogWarning("failed: %s: %v", r.path, r.err)
		}
	}
	spin.Stop()

	common.Info("Converted %d/%d file(s), %d failure(s).", len(matches)-len(failed), len(matches), len(failed))
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d conversions failed", len(failed), len(matches))
	}
	return nil
}

func convertOne(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	svgDoc, err := bob.ToSVG(string(data), settings.Default())
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outputDir, base+".svg")
	return os.WriteFile(outPath, []byte(svgDoc), 0o644)
}

// resolveWorkers reads the --workers flag inherited from the root
// command, accepting "full", "half", or an integer.
func resolveWorkers(cmd *cobra.Command) int {
	value, _ := cmd.Flags().GetString("workers")
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "full":
		return runtime.NumCPU()
	case "half", "":
		if n := runtime.NumCPU() / 2; n >= 1 {
			return n
		}
		return 1
	default:
		if n, err := strconv.Atoi(value); err == nil && n >= 1 {
			return n
		}
		return 1
	}
}
