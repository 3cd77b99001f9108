package user

import (
	"os"
	"os/user"
	"strings"
)

// Handle returns the current user's login name, lower-cased so it can be
// compared with board assignees such as "jai". It falls back to $USER and
// then to an empty string when neither is available.
func Handle() string {
	name := ""
	if current, err := user.Current(); err == nil {
		name = current.Username
	}
	if name == "" {
		name = os.Getenv("USER")
	}
	// domain accounts come back as DOMAIN\name
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}
