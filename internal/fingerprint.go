package internal

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// UUIDGenerator produces random version 4 UUIDs for the session and device
// headers. A fresh value is generated on every call.
type UUIDGenerator struct{}

// NewID returns a new 36 character UUIDv4 string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Browser user agents sent with every request. Copied from current desktop
// releases; the exact mix is not significant.
var defaultUserAgents = []string{
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64; rv:137.0) Gecko/20100101 Firefox/137.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:137.0) Gecko/20100101 Firefox/137.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.3 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36 Edg/135.0.0.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:137.0) Gecko/20100101 Firefox/137.0",
}

// UserAgentPool hands out a random user agent from a fixed list.
type UserAgentPool struct {
	agents []string
}

// NewUserAgentPool creates a pool over agents. With no agents the built-in
// browser list is used.
func NewUserAgentPool(agents ...string) *UserAgentPool {
	if len(agents) == 0 {
		agents = defaultUserAgents
	}
	return &UserAgentPool{agents: agents}
}

// UserAgent returns a random entry of the pool.
func (p *UserAgentPool) UserAgent() string {
	return p.agents[rand.IntN(len(p.agents))] // #nosec G404 -- not security sensitive
}

// Len returns the number of agents in the pool.
func (p *UserAgentPool) Len() int {
	return len(p.agents)
}
