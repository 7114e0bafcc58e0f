// Package clientrid generates client transaction identifiers (clTRID): a
// short token, unique per command, that the registry echoes back in its
// response so the caller can correlate request and reply.
package clientrid

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// maxLength is the EPP clTRID length ceiling (RFC 5730 token type).
const maxLength = 64

// Generator produces clTRID values scoped to one registrar login ID, in the
// "{prefix}:{unix-seconds}:{short-uuid}" shape: human-greppable in registry
// logs, with 8 random hex digits making a collision within the same second
// very unlikely even under concurrent use from multiple connections.
type Generator struct {
	prefix string
}

// New builds a Generator for the given login ID. The login ID is
// truncated if necessary to keep generated IDs within the 64-character
// clTRID limit.
func New(prefix string) *Generator {
	if len(prefix) > 32 {
		prefix = prefix[:32]
	}
	return &Generator{prefix: prefix}
}

// Next returns a new clTRID value.
func (g *Generator) Next() string {
	id := fmt.Sprintf("%s:%d:%s", g.prefix, time.Now().Unix(), uuid.NewString()[:8])
	if len(id) > maxLength {
		id = id[:maxLength]
	}
	return id
}
