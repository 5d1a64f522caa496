package element

import "github.com/mattn/go-runewidth"

// displayWidth measures a string's terminal column width, not its byte
// length or rune count, so that wide (e.g. CJK) text runs concatenate at
// the correct X offset (§4.6 text concatenation, §9 "wide characters").
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
