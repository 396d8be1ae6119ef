package ui

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type idScopeKey struct{}

// unscopedIDs numbers ids generated outside any scope so they never repeat
// within the process.
var unscopedIDs atomic.Int64

type idScope struct {
	next atomic.Int64
}

// WithIDScope returns a context whose renders hand out sequential element ids.
// Rendering the same tree under a fresh scope yields the same ids.
func WithIDScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, idScopeKey{}, &idScope{})
}

// generatedID derives an id for an element that was not given one. Inside an
// id scope the id carries the scope's sequence number; outside a scope it
// carries a process-wide "g" sequence, so it stays unique but is not stable
// across renders.
func generatedID(ctx context.Context, hint string) string {
	base := slug(hint)
	if base == "" {
		base = "field"
	}
	scope, ok := ctx.Value(idScopeKey{}).(*idScope)
	if !ok {
		return base + "-g" + strconv.FormatInt(unscopedIDs.Add(1), 10)
	}
	return base + "-" + strconv.FormatInt(scope.next.Add(1), 10)
}

func slug(s string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
