package config

// Environment variable prefix for every simulator setting
const EnvPrefix = "SLOTSIM_"

// Defaults applied when neither .env nor the environment set a value
const (
	DefaultSpins        = 10000
	DefaultMegaSpins    = 1000000
	DefaultPlayerCounts = "3,10,25,50,75"
	DefaultCacheSize    = 256
)

// Error contexts
const (
	ErrContextParseEnv = "parse env"
	ErrContextValidate = "validate config"
)
