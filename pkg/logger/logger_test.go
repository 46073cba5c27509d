package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "Auth", WARNING, "127.0.0.1")

	log.PrintfDebug("debug %d", 1)
	log.PrintfInfo("info %d", 2)
	log.Printf("plain %d", 3)
	log.PrintfWarning("warning %d", 4)
	log.PrintfError("error %d", 5)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.NotContains(t, out, "plain 3")
	assert.Contains(t, out, "[WARNING] [Auth] [127.0.0.1] warning 4")
	assert.Contains(t, out, "[ERROR] [Auth] [127.0.0.1] error 5")
}

func TestLogger_UnknownLevelFallsBackToDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "Main", LogLevel("verbose"), "System")

	assert.Equal(t, DEBUG, log.Level())
	log.PrintfDebug("hello")
	assert.True(t, strings.Contains(buf.String(), "[DEBUG] [Main] [System] hello"))
}

func TestLogger_LevelIsCaseInsensitive(t *testing.T) {
	log := NewLogger(&bytes.Buffer{}, "Main", LogLevel("error"), "System")
	assert.Equal(t, ERROR, log.Level())
}
