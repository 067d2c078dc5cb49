package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Gravatar derives avatar URLs from email addresses. The URL is computed
// once at registration and stored on the user, so later email changes do
// not retroactively change existing posts' snapshots.
type Gravatar struct {
	size     int
	rating   string
	fallback string
}

// NewGravatar creates a gravatar resolver with the standard settings
func NewGravatar() *Gravatar {
	return &Gravatar{
		size:     200,
		rating:   "pg",
		fallback: "mm",
	}
}

// URLFor returns the gravatar URL for the given email
func (g *Gravatar) URLFor(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(email))
	hash := hex.EncodeToString(sum[:])
	return fmt.Sprintf("https://gravatar.com/avatar/%s?s=%d&r=%s&d=%s", hash, g.size, g.rating, g.fallback)
}
