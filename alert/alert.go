// Package alert shows a blocking error message before the process exits.
//
// Builds with the "dialog" tag use the platform's native message box. Other
// builds draw the message in a small ebiten window with ebitenui.
package alert

import "strings"

const wrapWidth = 40

// wrapText breaks s into lines of at most width runes, splitting on spaces.
// Words longer than width are kept whole on their own line.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len([]rune(line))+1+len([]rune(w)) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
