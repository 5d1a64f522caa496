// Package svgmap lowers a reduced Element list into an SVG document
// (§4.7), using github.com/ajstarks/svgo for the document skeleton
// (Start/End, Def/DefEnd) and raw XML for every drawing primitive, since
// §4.7/§6.4's mandatory class="fg_stroke"/"fg_fill"/"no_fill"/"dashed"
// styling scheme has no svgo equivalent — svgo always wraps its style
// parameter as a single style="..." attribute.
package svgmap

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/eng618/bobsvg/pkg/block"
	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/point"
	"github.com/eng618/bobsvg/pkg/settings"
)

// marker ids, matching element.Feature.MarkerID.
const (
	markerTriangle      = "triangle"
	markerClearTriangle = "clear_triangle"
	markerCircle        = "circle"
	markerSquare        = "square"
	markerOpenCircle    = "open_circle"
	markerBigOpenCircle = "big_open_circle"
)

// Render writes a complete SVG document for elements sized to fit a grid
// of the given cell dimensions, per §6.4's output skeleton.
func Render(elements []element.Element, cols, rows int, s settings.Settings) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	width := int(math.Ceil(float64(cols) * s.TextWidth))
	height := int(math.Ceil(float64(rows) * s.TextHeight))

	canvas.Start(width, height)
	writeStylesheet(&buf, s)

	canvas.Def()
	writeMarkers(&buf, s)
	canvas.DefEnd()

	for _, e := range elements {
		writeElement(&buf, e, s)
	}

	canvas.End()
	return buf.String()
}

// writeStylesheet emits the §4.7/§6.4 class-based styling scheme. Every
// drawing element carries one of these classes rather than inline
// presentation attributes, which is also why elements are written as raw
// XML below instead of through svgo's helpers: svgo's style parameter is
// always wrapped into a single style="..." attribute (see
// other_examples' svgo Line/Circle/Arc), leaving no way to emit class=.
func writeStylesheet(buf *bytes.Buffer, s settings.Settings) {
	fmt.Fprintf(buf, `<style>
text { font-family: %s; font-size: %gpx; }
.fg_stroke { stroke: black; stroke-width: %g; fill: none; }
.fg_fill { fill: black; stroke: none; }
.no_fill { fill: none; }
.dashed { stroke-dasharray: 4,3; }
</style>
`, s.FontFamily, s.FontSize, s.StrokeWidth)
}

func writeMarkers(buf *bytes.Buffer, s settings.Settings) {
	fmt.Fprintf(buf, `<marker id="%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse"><path d="M0,0 L10,5 L0,10 z" fill="black"/></marker>`+"\n", markerTriangle)
	fmt.Fprintf(buf, `<marker id="%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse"><path d="M0,0 L10,5 L0,10 z" fill="white" stroke="black"/></marker>`+"\n", markerClearTriangle)
	fmt.Fprintf(buf, `<marker id="%s" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="6" markerHeight="6"><circle cx="5" cy="5" r="4" fill="black"/></marker>`+"\n", markerCircle)
	fmt.Fprintf(buf, `<marker id="%s" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="6" markerHeight="6"><rect x="1" y="1" width="8" height="8" fill="black"/></marker>`+"\n", markerSquare)
	fmt.Fprintf(buf, `<marker id="%s" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="7" markerHeight="7"><circle cx="5" cy="5" r="4" fill="white" stroke="black"/></marker>`+"\n", markerOpenCircle)
	fmt.Fprintf(buf, `<marker id="%s" viewBox="0 0 10 10" refX="5" refY="5" markerWidth="10" markerHeight="10"><circle cx="5" cy="5" r="4.5" fill="white" stroke="black"/></marker>`+"\n", markerBigOpenCircle)
}

// writeElement writes one element as raw XML carrying the class-based
// styling scheme: "fg_stroke no_fill" for unfilled outlines (circle
// markers, arcs), "fg_stroke[ dashed]" for lines, "fg_fill" for text —
// matching the original's Element::to_svg class assignment.
func writeElement(buf *bytes.Buffer, e element.Element, s settings.Settings) {
	switch e.Kind {
	case element.KindCircle:
		fmt.Fprintf(buf, `<circle class="fg_stroke no_fill" cx="%g" cy="%g" r="%g"/>`+"\n",
			e.Center.X, e.Center.Y, e.Radius)
	case element.KindLine:
		class := "fg_stroke"
		if e.Stroke == element.Dashed {
			class = "fg_stroke dashed"
		}
		fmt.Fprintf(buf, `<line class="%s" x1="%g" y1="%g" x2="%g" y2="%g"%s/>`+"\n",
			class, e.Start.X, e.Start.Y, e.End.X, e.End.Y, markerAttrs(e))
	case element.KindArc:
		sweep := 0
		if e.Sweep {
			sweep = 1
		}
		large := 0
		if e.ArcFlag == element.Major {
			large = 1
		}
		d := fmt.Sprintf("M %g %g A %g %g 0 %d %d %g %g", e.Start.X, e.Start.Y, e.Radius, e.Radius, large, sweep, e.End.X, e.End.Y)
		fmt.Fprintf(buf, `<path class="fg_stroke no_fill" d="%s"%s/>`+"\n", d, markerAttrs(e))
	case element.KindText:
		lb := point.LocBlock{Loc: e.Loc, Settings: s}
		baseline := lb.ToPoint(block.U)
		fmt.Fprintf(buf, `<text class="fg_fill" x="%g" y="%g">%s</text>`+"\n", baseline.X, baseline.Y, escapeText(e.Text))
	}
}

// markerAttrs renders marker-start/marker-end presentation attributes for
// a line or arc's arrowhead/terminator features.
func markerAttrs(e element.Element) string {
	attrs := ""
	if id := e.StartFeature.MarkerID(); id != "" {
		attrs += fmt.Sprintf(` marker-start="url(#%s)"`, id)
	}
	if id := e.EndFeature.MarkerID(); id != "" {
		attrs += fmt.Sprintf(` marker-end="url(#%s)"`, id)
	}
	return attrs
}

func escapeText(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			out.WriteString("&amp;")
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
