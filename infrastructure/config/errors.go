package config

import "errors"

// Domain errors for scenario configuration loading.
var (
	// ErrConfigNotFound indicates the scenario file was not found.
	ErrConfigNotFound = errors.New("scenario file not found")

	// ErrInvalidFormat indicates the scenario content could not be parsed.
	ErrInvalidFormat = errors.New("invalid scenario format")

	// ErrUnsupportedFormat indicates the file extension names an
	// unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported scenario format")

	// ErrValidationFailed indicates a loaded scenario failed structural
	// validation (e.g. no domain named, an item with no recognized kind).
	ErrValidationFailed = errors.New("scenario validation failed")

	// ErrMissingEnvVar indicates a required (":?"-marked) environment
	// variable referenced by the scenario file was not set.
	ErrMissingEnvVar = errors.New("required environment variable not set")

	// ErrUnknownDomain indicates a scenario names a domain the CLI has no
	// built-in registration for.
	ErrUnknownDomain = errors.New("unknown built-in domain")
)
