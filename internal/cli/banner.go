package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-query/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"
)

const (
	AlignLeft = iota
	AlignCenter
	AlignRight

	bannerPadding   = 2
	truncateReserve = 1
	halfDivisor     = 2
)

// DefaultTerminalWidth is used when COLUMNS is unset or unusable.
const DefaultTerminalWidth = 80

// bannerSuppressed reports whether QRY_NO_BANNER asks for plain headers.
func bannerSuppressed() bool {
	return envutil.Bool("QRY_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// terminalWidth reads COLUMNS, the width most shells export.
func terminalWidth() int {
	width := envutil.Map(envutil.String("COLUMNS"), strconv.Atoi).ValueOrElse(DefaultTerminalWidth)
	if width <= bannerPadding {
		return DefaultTerminalWidth
	}

	return width
}

// BannerAutoWidth is Banner sized to the terminal.
func BannerAutoWidth(s string, alignment int) string {
	return Banner(s, terminalWidth(), alignment)
}

// Banner draws s inside a box width columns wide. Lines that do not fit
// are cut short with an ellipsis. With QRY_NO_BANNER set, s is returned
// as a plain line.
func Banner(s string, width int, alignment int) string {
	if bannerSuppressed() {
		return s + "\n"
	}

	lines := getLines(s)
	if len(lines) == 0 || width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range lines {
		var line string

		switch alignment {
		case AlignCenter:
			line = pad(l, inner, halfDivisor)
		case AlignLeft:
			line = pad(l, inner, 0)
		case AlignRight:
			line = pad(l, inner, 1)
		default:
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) (string, int) {
	var out strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		out.WriteRune(r)
	}

	return out.String(), count
}

// pad fits text into width columns. leftShare picks where the spare room
// goes: 0 pads on the right, 1 pads on the left, 2 splits it.
func pad(text string, width int, leftShare int) string {
	length := countGraphic(text)
	if length == width {
		return text
	}

	str := text
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
		length++
	}

	diff := width - length

	var left int

	switch leftShare {
	case 0:
		left = 0
	case 1:
		left = diff
	default:
		left = diff / halfDivisor
	}

	return fmt.Sprintf("%s%s%s", strings.Repeat(" ", left), str, strings.Repeat(" ", diff-left))
}
