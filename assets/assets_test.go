package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/ui"
)

func TestStylesheetParses(t *testing.T) {
	sheet, err := ui.ParseCSS(Stylesheet)
	require.NoError(t, err)
	assert.NotEmpty(t, sheet.Rules)

	e := ui.New()
	e.SetStylesheet(sheet)
	btn := ui.Button("btn-primary", "Add to Cart", ui.Rect{}, nil)
	assert.True(t, e.Style(btn, ui.StateNormal).Center)
	assert.NotEqual(t, e.Style(btn, ui.StateNormal).Background, e.Style(btn, ui.StateDisabled).Background)
}
