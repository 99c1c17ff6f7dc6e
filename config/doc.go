// Package config loads typed settings for seqkit components.
//
// It uses Viper to read a YAML/JSON/TOML file, godotenv to load a .env file,
// and binds environment variables carrying the component prefix
// (e.g. SEQUENCE_TRACE, SEQUENCE_LOGGING_LEVEL).
//
// # Usage
//
//	settings, err := config.Load[sequence.Settings]("sequence")
//
// Load runs ApplyDefaults and Validate when the settings type has them.
package config
