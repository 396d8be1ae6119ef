package config

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingEnv reports a required variable that is unset or empty.
var ErrMissingEnv = errors.New("missing environment variable")

// Env gives named access to single variables for binaries that need one or
// two values rather than the whole Config.
type Env struct {
	lookup func(string) (string, bool)
}

// OSEnv reads the process environment.
func OSEnv() Env {
	return Env{lookup: os.LookupEnv}
}

// MapEnv reads from a fixed set of values.
func MapEnv(values map[string]string) Env {
	return Env{lookup: func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}}
}

// Require returns the value of key. An unset or empty variable yields the
// first fallback when one is given and ErrMissingEnv otherwise.
func (e Env) Require(key string, fallback ...string) (string, error) {
	if value, ok := e.lookup(key); ok && value != "" {
		return value, nil
	}
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingEnv, key)
}

// Optional returns the value of key, or fallback only when key is unset. A
// variable set to the empty string stays empty.
func (e Env) Optional(key, fallback string) string {
	if value, ok := e.lookup(key); ok {
		return value
	}
	return fallback
}
