package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	terminal := NewThemeWithName("Terminal")
	assert.Equal(t, lipgloss.Color(terminalRed), terminal.Colors.Red)

	fallback := NewThemeWithName("no-such-theme")
	assert.Equal(t, newKanagawaColors(), fallback.Colors)
}

func TestRenderStatusKeepsText(t *testing.T) {
	for _, status := range []string{"success", "error", "warning", "info", "other"} {
		assert.Contains(t, RenderStatus(status, "done"), "done", status)
	}
}
