package config

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Environments
const (
	EnvDev        = "dev"
	EnvProduction = "prod"
)

// Error messages
const (
	ErrMsgParseEnv         = "failed to parse environment"
	ErrMsgInvalidConfig    = "invalid configuration"
	ErrMsgAPIKeyMissing    = "API_KEY environment variable must be set for security"
	ErrMsgJWTSecretMissing = "JWT_SECRET environment variable must be set to issue and verify tokens"
)

// Example values shipped in .env.example
const (
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_64"
	ExampleDBPassword = "change_this_secure_password"
)
