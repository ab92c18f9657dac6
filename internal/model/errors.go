package model

import "fmt"

// ConfigError reports a missing, malformed or invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}

// NetworkError reports an unreachable or non-2xx market data API.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DataError reports an API response inconsistent with the config, or
// degenerate math such as a zero-value portfolio.
type DataError struct {
	Detail string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data error: %s", e.Detail)
}
