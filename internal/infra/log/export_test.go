package log

import "go.uber.org/zap/zapcore"

// SetConsoleOutput points the console logger built by the next Init at w.
func SetConsoleOutput(w zapcore.WriteSyncer) (restore func()) {
	prev := consoleOutput
	consoleOutput = w
	return func() { consoleOutput = prev }
}
