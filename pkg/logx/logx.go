package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	current int32 = int32(LevelInfo)
	std           = log.New(os.Stdout, "", log.LstdFlags)
)

// SetLevel sets the minimum level that will be logged
func SetLevel(l Level) {
	atomic.StoreInt32(&current, int32(l))
}

// SetOutput redirects log output, defaulting to stdout
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func enabled(l Level) bool {
	return int32(l) >= atomic.LoadInt32(&current)
}

func output(l Level, tag, msg string) {
	if !enabled(l) {
		return
	}
	std.Printf("[%s] %s", tag, msg)
}

func Debug(msg string) { output(LevelDebug, "DEBUG", msg) }
func Info(msg string)  { output(LevelInfo, "INFO", msg) }
func Warn(msg string)  { output(LevelWarn, "WARN", msg) }
func Error(msg string) { output(LevelError, "ERROR", msg) }

func Debugf(format string, args ...any) { output(LevelDebug, "DEBUG", fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { output(LevelInfo, "INFO", fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { output(LevelWarn, "WARN", fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { output(LevelError, "ERROR", fmt.Sprintf(format, args...)) }

// Fatalf logs at error level and exits
func Fatalf(format string, args ...any) {
	std.Printf("[FATAL] %s", fmt.Sprintf(format, args...))
	os.Exit(1)
}
