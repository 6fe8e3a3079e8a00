// Package config loads typed configuration from environment variables.
//
// Struct fields are mapped with github.com/caarlos0/env/v11 tags; an optional
// .env file is read through github.com/joho/godotenv. Each config type is
// parsed once and cached, so packages may call Load for the same type
// independently. Reload and ResetCache exist for tests and hot config
// changes.
//
//	var http httpserver.Config
//	config.MustLoad(&http)
package config
