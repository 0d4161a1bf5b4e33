package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/picker"
)

func TestPicker_Run(t *testing.T) {
	var out bytes.Buffer
	p := NewPicker(&out, false)

	script := "red\nselect Blue\nmauve\nlist\nquit\ngreen\n"
	require.NoError(t, p.Run(NewLineReader(strings.NewReader(script))))

	got, ok := p.State.Selected()
	require.True(t, ok)
	assert.Equal(t, picker.Blue, got)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "No color selected\n"), text)
	assert.Contains(t, text, "Red (255, 0, 0)")
	assert.Contains(t, text, "Blue (0, 0, 255)")
	assert.Contains(t, text, `unknown color "mauve"`)
	assert.Contains(t, text, "Purple (128, 0, 128)")
}

func TestPicker_Pick(t *testing.T) {
	var out bytes.Buffer
	p := NewPicker(&out, true)

	require.NoError(t, p.Pick("yellow"))
	assert.Contains(t, out.String(), "\x1b[48;2;255;255;0m")
	assert.Error(t, p.Pick("orange"))
}
