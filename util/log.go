package util
import (
	"os"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
 * a leveled logger. Levels are switched on by the Mode bitmask, the output
 * goes through zap to a file (or stderr when no file is configured).
 */
const (
	Error = 1
	Warning = 2
	Info = 4

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	GreenColor = "\033[32m"
	CyanColor = "\033[36m"
	ResetColor = "\033[0m"
)

type LoggerInfo struct {
	Filename	string		`yaml:"filename"`
	IsColored	bool		`yaml:"is_colored"`
	SaveTime	bool		`yaml:"save_time"`
	Mode		uint8		`yaml:"mode"`
}

type Logger struct {
	li		*LoggerInfo
	z		*zap.Logger
	file		*os.File
}

func NewLogger( li *LoggerInfo ) (*Logger, error) {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.CallerKey = ""
	cfg.NameKey = ""
	cfg.StacktraceKey = ""
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if li.SaveTime == false {
		cfg.TimeKey = ""
	}
	if li.IsColored {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var (
		sink zapcore.WriteSyncer
		file *os.File
	)
	if li.Filename == "" {
		sink = zapcore.Lock( os.Stderr )
	} else {
		f, err := os.OpenFile( li.Filename, os.O_APPEND | os.O_CREATE | os.O_WRONLY, 0600 )
		if err != nil {
			return nil, err
		}
		file = f
		sink = zapcore.AddSync( f )
	}
	core := zapcore.NewCore( zapcore.NewConsoleEncoder( cfg ), sink, zapcore.DebugLevel )
	return &Logger{ li, zap.New( core ), file }, nil
}

// a logger which writes nothing, for tests and tools.
func NewNopLogger() *Logger {
	return &Logger{ &LoggerInfo{}, zap.NewNop(), nil }
}

func(l *Logger) Close() error {
	l.z.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func(l *Logger) LogError( err error, fields ...zap.Field ) {
	if l.li.Mode & Error == Error {
		l.z.Error( err.Error(), fields... )
	}
}

func(l *Logger) LogWarning( warning string, fields ...zap.Field ) {
	if l.li.Mode & Warning == Warning {
		l.z.Warn( warning, fields... )
	}
}

func(l *Logger) LogInfo( info string, fields ...zap.Field ) {
	if l.li.Mode & Info == Info {
		l.z.Info( info, fields... )
	}
}
