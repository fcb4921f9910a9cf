package log

type ctxKey string

// RequestIDKey is the context key under which middleware stores the request id.
const RequestIDKey ctxKey = "request_id"

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)
