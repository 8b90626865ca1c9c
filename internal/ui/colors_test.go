package ui

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestInitColors(t *testing.T) {
	t.Run("with NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		color.NoColor = false
		InitColors()

		assert.True(t, color.NoColor)
	})

	t.Run("with TERM=dumb", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("TERM", "dumb")

		color.NoColor = false
		InitColors()

		assert.True(t, color.NoColor)
	})
}

func TestPrintHelpers(_ *testing.T) {
	color.NoColor = true

	// Just ensure formatting doesn't panic
	PrintSuccess("found %s", "houdini")
	PrintInfo("scanning %s", "/opt")
	PrintWarning("nothing under %s", "/opt/maya")
	PrintError("could not find executable: %s", "hython")
	PrintKeyValue("Version", "17.5.626")
}
