package main

import (
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// keyMatcher compiles a key filter. An empty pattern matches every key.
func keyMatcher(pattern string) (func(string) bool, error) {
	if pattern == "" {
		return func(string) bool { return true }, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid filter %q", pattern)
	}
	return g.Match, nil
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
