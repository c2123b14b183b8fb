package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) { //nolint:paralleltest
	t.Setenv("QRY_NO_BANNER", "false")

	tests := []struct {
		name      string
		text      string
		width     int
		alignment int
		want      string
	}{
		{"center", "hi", 10, AlignCenter, "╒════════╕\n│   hi   │\n└────────┘\n"},
		{"left", "ab", 6, AlignLeft, "╒════╕\n│ab  │\n└────┘\n"},
		{"right", "ab", 6, AlignRight, "╒════╕\n│  ab│\n└────┘\n"},
		{"truncated", "abcdefghij", 6, AlignLeft, "╒════╕\n│abc…│\n└────┘\n"},
		{"exact fit", "abcd", 6, AlignCenter, "╒════╕\n│abcd│\n└────┘\n"},
		{"multi line", "a\r\nb", 5, AlignLeft, "╒═══╕\n│a  │\n│b  │\n└───┘\n"},
		{"bad alignment", "x", 10, 42, ""},
		{"too narrow", "x", 2, AlignLeft, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Banner(tt.text, tt.width, tt.alignment))
		})
	}
}

func TestBannerSuppressed(t *testing.T) { //nolint:paralleltest
	t.Setenv("QRY_NO_BANNER", "true")

	assert.Equal(t, "3 of 5 records\n", BannerAutoWidth("3 of 5 records", AlignCenter))
}

func TestTerminalWidth(t *testing.T) { //nolint:paralleltest
	t.Setenv("COLUMNS", "120")
	assert.Equal(t, 120, terminalWidth())

	t.Setenv("COLUMNS", "wide")
	assert.Equal(t, DefaultTerminalWidth, terminalWidth())

	t.Setenv("COLUMNS", "1")
	assert.Equal(t, DefaultTerminalWidth, terminalWidth())
}
