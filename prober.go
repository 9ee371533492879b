// Package kittykeys negotiates and decodes the kitty keyboard protocol.
// It probes a terminal for protocol support over a timed transport and
// translates CSI key-report sequences into structured key events.
package kittykeys

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminalUnresponsive is returned by EnabledFlags when the
	// transport reports an absent reply: the terminal connection is not
	// answering at all, as opposed to answering with something wrong.
	ErrTerminalUnresponsive = errors.New("terminal did not respond to the flags query")

	// ErrMalformedReply is returned by EnabledFlags when a reply arrived
	// but does not match the ESC [ ? D u wire shape exactly.
	ErrMalformedReply = errors.New("malformed flags reply")
)

// Transport performs one query round trip against the terminal: write
// the query bytes, then wait up to the transport's deadline for reply
// bytes to form. Implementations must return an empty present Reply when
// the wait elapses with nothing read, and an absent Reply when the
// connection itself failed. TTY implements this against a real terminal
// device; tests substitute their own.
type Transport interface {
	Roundtrip(query []byte) (Reply, error)
}

// Prober negotiates kitty keyboard protocol support with a terminal.
// Only one probe should be in flight per terminal session, since
// concurrent probes would interleave reply bytes on the shared input
// stream.
type Prober struct {
	transport Transport
}

// NewProber returns a Prober that sends queries through t.
func NewProber(t Transport) *Prober {
	return &Prober{transport: t}
}

// Supported reports whether the terminal implements the kitty keyboard
// protocol. It never fails: no reply, an empty reply, a transport error
// and a reply of the wrong shape all mean "unsupported", which is the
// normal outcome on most terminals. A single unanswered probe is
// conclusive; it is not retried, so a slow terminal cannot answer twice
// and leave stray bytes on the stream.
func (p *Prober) Supported() bool {
	reply, err := p.transport.Roundtrip([]byte(QueryFlags))
	if err != nil || reply.Absent {
		return false
	}
	_, ok := parseFlagsReply(reply.Data)
	return ok
}

// EnabledFlags queries the terminal for its currently enabled
// enhancement flags. Callers use this after support is established, to
// merge newly requested flags with what is already active, so here a
// missing answer is a session problem rather than an absent feature:
// an absent reply fails with ErrTerminalUnresponsive and a present but
// wrong-shaped reply fails with ErrMalformedReply, never a silent zero.
func (p *Prober) EnabledFlags() (Flags, error) {
	reply, err := p.transport.Roundtrip([]byte(QueryFlags))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTerminalUnresponsive, err)
	}
	if reply.Absent {
		return 0, ErrTerminalUnresponsive
	}
	flags, ok := parseFlagsReply(reply.Data)
	if !ok {
		return 0, ErrMalformedReply
	}
	return flags, nil
}
