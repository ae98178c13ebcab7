package user

import (
	"errors"
	"os/user"
	"testing"
)

func TestCurrentUsername_NotEmpty(t *testing.T) {
	if CurrentUsername() == "" {
		t.Error("CurrentUsername() should never return an empty string")
	}
}

func TestResolveUsername_Fallbacks(t *testing.T) {
	orig := lookup
	t.Cleanup(func() { lookup = orig })
	lookup = func() (*user.User, error) { return nil, errors.New("no passwd entry") }

	tests := []struct {
		name     string
		user     string
		username string
		want     string
	}{
		{"USER wins", "alice", "bob", "alice"},
		{"USERNAME when USER unset", "", "bob", "bob"},
		{"unknown when nothing set", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("USER", tt.user)
			t.Setenv("USERNAME", tt.username)

			if got := resolveUsername(); got != tt.want {
				t.Errorf("resolveUsername() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveUsername_PrefersOS(t *testing.T) {
	orig := lookup
	t.Cleanup(func() { lookup = orig })
	lookup = func() (*user.User, error) { return &user.User{Username: "osuser"}, nil }
	t.Setenv("USER", "envuser")

	if got := resolveUsername(); got != "osuser" {
		t.Errorf("resolveUsername() = %q, want osuser", got)
	}
}
