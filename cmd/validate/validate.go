// Package validate provides the command-line interface for diagnosing a
// diagram's recognized vs. unrecognized characters without converting it.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/bobsvg/pkg/common"
	"github.com/eng618/bobsvg/pkg/grid"
	"github.com/eng618/bobsvg/pkg/properties"
	"github.com/eng618/bobsvg/pkg/settings"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Report which characters in a diagram are recognized as drawing glyphs",
	Long: `validate reads one or more diagram files and, for every non-blank
character, reports whether the property table recognizes it as a drawing
glyph in its neighborhood or whether it will fall through to plain text.
It never writes SVG output; use the root command or "build" for that.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

// GetCommand returns the validate command.
func GetCommand() *cobra.Command {
	return validateCmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if err := validateFile(path); err != nil {
			return err
		}
	}
	return nil
}

// validateFile reports, per file, how many non-blank characters resolved
// to drawing geometry versus plain text. Characters absent from the
// property table (ordinary letters, digits, punctuation) are expected
// and counted as text, not as an error.
func validateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	g := grid.FromString(string(data), settings.Default())
	drawing, text := 0, 0
	for _, l := range g.Locs() {
		ch, _ := g.Get(l)
		if ch == ' ' {
			continue
		}
		if _, ok := properties.Lookup(ch); ok && grid.At(g, l).UsedAsDrawing() {
			drawing++
			continue
		}
		text++
	}

	common.Info("%s: %d drawing, %d text", path, drawing, text)
	return nil
}
