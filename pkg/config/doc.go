// Package config loads dashboard configuration from the environment and from
// optional YAML files.
//
// Environment loading wraps `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11`: the default `.env` file is read once per
// process, then environment variables are parsed into any annotated struct.
// Each configuration type is parsed at most once and cached for the lifetime
// of the process.
//
// YAML loading exists for the route tables (public allow-list, auth-flow
// prefixes) which operators edit as files rather than environment variables.
//
// Example:
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
package config
