package core

// Logger interface for raytracer logging
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Infof(format string, args ...interface{})  {}
func (NopLogger) Debugf(format string, args ...interface{}) {}
