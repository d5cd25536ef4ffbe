package cache

import "go.uber.org/zap"

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is the single collaborator this package asks callers for. It
// has exactly one method, no structured fields in its signature -- the
// implementation is free to attach whatever fields it likes. The tiers
// and the unifier log only through this interface; zap appears only in
// the default adapter below and in Config.BuildCache.
type Logger interface {
	Log(level Level, message string)
}

// zapLogger adapts a *zap.Logger to the Logger interface. This is the
// default wiring used by Config.BuildCache; tests and other embedders
// may supply their own Logger instead.
type zapLogger struct {
	z *zap.Logger
}

// NewZapLogger wraps z as a cache.Logger. A nil z is replaced with a
// no-op zap logger.
func NewZapLogger(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &zapLogger{z: z}
}

func (l *zapLogger) Log(level Level, message string) {
	switch level {
	case LevelDebug:
		l.z.Debug(message)
	case LevelInfo:
		l.z.Info(message)
	case LevelWarn:
		l.z.Warn(message)
	case LevelError:
		l.z.Error(message)
	default:
		l.z.Info(message)
	}
}

// noopLogger discards everything; used as the default when a component
// is constructed without an explicit Logger.
type noopLogger struct{}

func (noopLogger) Log(Level, string) {}
