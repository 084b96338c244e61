// Package config holds atomscope settings: built-in defaults, the optional
// YAML file (.atomscope), environment variables and CLI flags, applied in
// that order of increasing precedence.
package config
