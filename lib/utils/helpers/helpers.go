package helpers

import (
	"context"
	"regexp"
	"strings"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// FileName makes a download file name from a free text title, e.g. "Go developer" -> "go_developer"
func FileName(title, fallback string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(title), "_"), "_")
	if name == "" {
		return fallback
	}
	return name
}

// Seconds converts a config value in seconds to a duration
func Seconds(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
