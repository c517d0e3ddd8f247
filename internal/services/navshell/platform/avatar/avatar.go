// Package avatar maps session identities to avatar image URLs.
package avatar

import (
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
)

// DefaultCount is the number of bundled default avatars.
const DefaultCount = 6

// Resolver builds avatar URLs. It is pure: the same session always yields the
// same URL.
type Resolver struct {
	// AssetBaseURL serves default avatars from a CDN when set.
	AssetBaseURL string
	// Count is the number of default avatars; zero uses DefaultCount.
	Count int
}

// URL returns the avatar URL for sess: its own avatar when it has a usable
// one, otherwise a default picked deterministically from the user id.
func (r Resolver) URL(sess session.Session) string {
	if custom := strings.TrimSpace(sess.AvatarURL); custom != "" && usable(custom) {
		return custom
	}
	name := strconv.Itoa(r.Slot(sess)) + ".svg"
	if base := strings.TrimRight(strings.TrimSpace(r.AssetBaseURL), "/"); base != "" {
		return base + "/avatars/" + name
	}
	return routepath.StaticPrefix + "avatars/" + name
}

// Slot returns the default avatar index for sess.
func (r Resolver) Slot(sess session.Session) int {
	count := r.Count
	if count <= 0 {
		count = DefaultCount
	}
	key := strings.TrimSpace(sess.UserID)
	if key == "" {
		key = strings.TrimSpace(sess.Username)
	}
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte("navshell-avatar-v1"))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(key))
	return int(hasher.Sum64() % uint64(count))
}

func usable(raw string) bool {
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return true
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "https" || parsed.Scheme == "http") && parsed.Host != ""
}
