package logger

import "go.uber.org/zap/zapcore"

// SetStdout swaps the fallback writer and returns a restore func.
func SetStdout(ws zapcore.WriteSyncer) func() {
	prev := stdout
	stdout = ws
	return func() { stdout = prev }
}
