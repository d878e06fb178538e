package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "minecorelib"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment String Values
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyModule      = "module"
)
