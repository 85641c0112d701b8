package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting CoinToss"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Insecure configuration"
	LogMsgStorageMemory       = "Using in-memory storage; state is lost on restart"
	LogMsgStoragePostgres     = "Using PostgreSQL storage"
	LogMsgMigrationsApplied   = "Database migrations applied"
	LogMsgEventSystemReady    = "Event system initialized"
	LogMsgSessionFinished     = "Game finished"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerFailed         = "Server failed"
)

// Error messages
const (
	ErrMsgOpenStorage         = "failed to open storage"
	ErrMsgMigrate             = "failed to apply migrations"
	ErrMsgRegisterCacheMetric = "failed to register catalog cache metrics"
	ErrMsgUnknownStorage      = "unknown storage backend"
)
