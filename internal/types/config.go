package types

type RunMode string

const (
	// ModeLocal runs the API server with developer defaults
	ModeLocal RunMode = "local"
	// ModeAPI runs just the API server
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// CacheKind selects the storage behind the coupon cache
type CacheKind string

const (
	CacheKindMemory CacheKind = "memory"
	CacheKindRedis  CacheKind = "redis"
)
