package config

import "errors"

// Configuration validation errors returned by Config.Validate and the
// commands. Use errors.Is to test for them.
var (
	// ErrNoQuery is returned when analyze is called without any substance.
	ErrNoQuery = errors.New("no query specified: provide a chemical name or formula")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown are set.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidTemperature is returned when the temperature is outside 0-2.
	ErrInvalidTemperature = errors.New("invalid temperature: must be between 0 and 2")

	// ErrEmptyModel is returned when no model name is configured.
	ErrEmptyModel = errors.New("invalid model: name must not be empty")

	// ErrInvalidProxyAddress is returned when the proxy is not host:port.
	ErrInvalidProxyAddress = errors.New("invalid proxy address: expected host:port")
)
