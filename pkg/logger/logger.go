package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type LogLevel string

const (
	DEBUG   LogLevel = "DEBUG"
	INFO    LogLevel = "INFO"
	WARNING LogLevel = "WARNING"
	ERROR   LogLevel = "ERROR"
)

var levelOrder = map[LogLevel]int{
	DEBUG:   0,
	INFO:    1,
	WARNING: 2,
	ERROR:   3,
}

var levelColors = map[LogLevel]*color.Color{
	DEBUG:   color.New(color.FgHiBlack),
	INFO:    color.New(color.FgBlue),
	WARNING: color.New(color.FgYellow),
	ERROR:   color.New(color.FgRed, color.Bold),
}

// Logger writes leveled, module scoped log lines.
// Every line carries the module name and the origin of the request (an ip or "System").
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	module string
	level  LogLevel
	origin string
}

func NewLogger(out io.Writer, module string, level LogLevel, origin string) *Logger {
	level = LogLevel(strings.ToUpper(string(level)))
	if _, ok := levelOrder[level]; !ok {
		level = DEBUG
	}

	return &Logger{
		out:    out,
		module: module,
		level:  level,
		origin: origin,
	}
}

func (l *Logger) enabled(level LogLevel) bool {
	return levelOrder[level] >= levelOrder[l.level]
}

func (l *Logger) write(level LogLevel, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}

	tag := levelColors[level].Sprintf("[%s]", level)
	line := fmt.Sprintf("%s %s [%s] [%s] %s\n",
		time.Now().Format(time.RFC3339),
		tag,
		l.module,
		l.origin,
		fmt.Sprintf(format, args...),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line)
}

// Printf logs at INFO level.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.write(INFO, format, args...)
}

func (l *Logger) PrintfDebug(format string, args ...interface{}) {
	l.write(DEBUG, format, args...)
}

func (l *Logger) PrintfInfo(format string, args ...interface{}) {
	l.write(INFO, format, args...)
}

func (l *Logger) PrintfWarning(format string, args ...interface{}) {
	l.write(WARNING, format, args...)
}

func (l *Logger) PrintfError(format string, args ...interface{}) {
	l.write(ERROR, format, args...)
}

// Level returns the minimum level this logger writes.
func (l *Logger) Level() LogLevel {
	return l.level
}
