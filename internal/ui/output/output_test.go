package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pipbridge/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestRenderer_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := output.Renderer(&bytes.Buffer{})
	assert.Equal(t, termenv.Ascii, r.ColorProfile())
	assert.Equal(t, "plain", r.NewStyle().Bold(true).Render("plain"))
}

func TestRenderer_NotTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	r := output.Renderer(&bytes.Buffer{})
	assert.Equal(t, termenv.Ascii, r.ColorProfile())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close() //nolint:errcheck // Best effort close in test
	assert.False(t, output.IsTerminal(f))
}
