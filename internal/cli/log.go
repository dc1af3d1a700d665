package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger writing to w. Verbose lowers the level
// to debug; otherwise only errors are shown.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), level)
	return zap.New(core).Named("styl")
}
