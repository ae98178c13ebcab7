// Package user identifies who is running the CLI so log lines can be
// attributed on shared machines.
package user

import (
	"os"
	"os/user"
	"sync"
)

// lookup is swapped in tests
var lookup = user.Current

// CurrentUsername returns the OS username, resolved once per process.
// Falls back to $USER, then $USERNAME, then "unknown".
var CurrentUsername = sync.OnceValue(resolveUsername)

func resolveUsername() string {
	if current, err := lookup(); err == nil && current.Username != "" {
		return current.Username
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name
		}
	}
	return "unknown"
}
