package core

// Logger is the logging contract the render pipeline writes through. A
// concrete op/go-logging-backed implementation lives in pkg/logging.
type Logger interface {
	Printf(format string, args ...interface{})
}
