package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// PathElement wraps path data in a stroked, unfilled path element.
func PathElement(data string, lineWidth float64) string {
	return fmt.Sprintf("<path style=\"fill: none; stroke: black; stroke-width: %.4fin; stroke-linejoin: round;\" d=\"\n%s\"/>\n",
		lineWidth, data)
}

// TextElement places a line of text with its baseline at (x, y), in inches.
func TextElement(x, y, size float64, text string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(text))
	return fmt.Sprintf("<text x=\"%.4fin\" y=\"%.4fin\" style=\"font-family: serif; font-size: %.4fin;\">%s</text>\n",
		x, y, size, buf.String())
}

// Comment makes s safe to embed in an XML comment.
func Comment(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return strings.TrimSuffix(s, "-")
}
