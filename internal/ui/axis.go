package ui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAxisValue marks a selection outside an axis' declared values.
var ErrUnknownAxisValue = errors.New("ui: unknown axis value")

// AxisError reports an undeclared value for one component axis.
type AxisError struct {
	Component string
	Axis      string
	Value     string
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("ui: %s %s %q is not declared", e.Component, e.Axis, e.Value)
}

func (e *AxisError) Unwrap() error {
	return ErrUnknownAxisValue
}

// axis describes one closed enumeration. The zero value of T means "not
// selected" and resolves to fallback.
type axis[T ~int] struct {
	component string
	name      string
	fallback  T
	values    []T
	labels    []string
}

func (a axis[T]) index(v T) int {
	for i, candidate := range a.values {
		if candidate == v {
			return i
		}
	}
	return -1
}

func (a axis[T]) resolve(v T) (T, error) {
	if v == 0 {
		return a.fallback, nil
	}
	if a.index(v) < 0 {
		return 0, a.unknown(fmt.Sprintf("%d", int(v)))
	}
	return v, nil
}

func (a axis[T]) parse(s string) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return a.fallback, nil
	}
	for i, label := range a.labels {
		if label == normalized {
			return a.values[i], nil
		}
	}
	return 0, a.unknown(s)
}

func (a axis[T]) label(v T) string {
	if i := a.index(v); i >= 0 {
		return a.labels[i]
	}
	return fmt.Sprintf("%s(%d)", a.name, int(v))
}

func (a axis[T]) all() []T {
	out := make([]T, len(a.values))
	copy(out, a.values)
	return out
}

func (a axis[T]) unknown(value string) error {
	return &AxisError{Component: a.component, Axis: a.name, Value: value}
}
