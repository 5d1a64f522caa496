package bob

import (
	"strings"
	"testing"

	"github.com/eng618/bobsvg/pkg/settings"
)

func TestToSVGProducesDocument(t *testing.T) {
	diagram := "+--+\n|  |\n+--+"
	out, err := ToSVG(diagram, settings.Default())
	if err != nil {
		t.Fatalf("ToSVG() error = %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("ToSVG() output is not a well-formed SVG document: %q", out)
	}
	if !strings.Contains(out, "<line") {
		t.Errorf("expected at least one <line> element for a box diagram, got %q", out)
	}
}

func TestToSVGArrow(t *testing.T) {
	out, err := ToSVG("a --> b", settings.Default())
	if err != nil {
		t.Fatalf("ToSVG() error = %v", err)
	}
	if !strings.Contains(out, "marker-end") {
		t.Errorf("expected an arrow marker reference in output, got %q", out)
	}
	if !strings.Contains(out, "<text") {
		t.Errorf("expected text elements for the labels, got %q", out)
	}
}

func TestToSVGEmptyInput(t *testing.T) {
	out, err := ToSVG("", settings.Default())
	if err != nil {
		t.Fatalf("ToSVG() error = %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("empty input should still produce a minimal SVG document, got %q", out)
	}
	if !strings.Contains(out, `width="0" height="0"`) {
		t.Errorf("empty input should produce a 0x0 canvas, got %q", out)
	}
}

func TestToSVGCircleEnhancement(t *testing.T) {
	out, err := ToSVG("a ( ) b", settings.Default())
	if err != nil {
		t.Fatalf("ToSVG() error = %v", err)
	}
	if !strings.Contains(out, "<circle") {
		t.Errorf("expected a <circle> element for the parenthesized circle pattern, got %q", out)
	}
}
