// Package config loads engine settings from environment variables. It only
// parses and validates; wiring the resulting [Config] into providers is the
// caller's job.
package config
