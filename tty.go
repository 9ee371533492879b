//go:build !windows

package kittykeys

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

// maxReplyLen caps how many reply bytes one round trip will collect, so
// a chatty stream cannot stall a probe until its timeout.
const maxReplyLen = 64

// TTY wraps the controlling terminal device in raw mode and implements
// Transport against it.
type TTY struct {
	t       *term.Term
	timeout time.Duration
}

// NewTTY opens the terminal device in raw mode, with the read timeout
// tuned to the session (see TerminalInfo.ProbeTimeout).
func NewTTY() (*TTY, error) {
	d := defaultProbeTimeout()
	t, err := term.Open(getTTYPath(), term.RawMode, term.CBreakMode, term.ReadTimeout(d))
	if err != nil {
		return nil, err
	}
	return &TTY{t, d}, nil
}

// getTTYPath returns the appropriate TTY path
func getTTYPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}

	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}

	// Default to /dev/tty
	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}

	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}

// SetTimeout sets the wall-clock bound for one query round trip.
func (tty *TTY) SetTimeout(d time.Duration) {
	tty.timeout = d
	tty.t.SetReadTimeout(tty.timeout)
}

// Timeout returns the configured round-trip timeout
func (tty *TTY) Timeout() time.Duration {
	return tty.timeout
}

// Close will restore and close the raw terminal
func (tty *TTY) Close() {
	tty.t.Restore()
	tty.t.Close()
}

// RawMode switches the terminal to raw mode
func (tty *TTY) RawMode() {
	term.RawMode(tty.t)
}

// Restore the terminal to its original state
func (tty *TTY) Restore() {
	tty.t.Restore()
}

// Flush discards any unread input
func (tty *TTY) Flush() {
	tty.t.Flush()
}

// WriteString writes a string to the terminal
func (tty *TTY) WriteString(s string) error {
	if n, err := tty.t.Write([]byte(s)); err != nil || n == 0 {
		return errors.New("no bytes written to the TTY")
	}
	return nil
}

// csiComplete reports whether buf holds one complete CSI sequence:
// ESC [ followed by at least one byte, ending on a final byte in
// 0x40..0x7E.
func csiComplete(buf []byte) bool {
	if len(buf) < 3 || buf[0] != 0x1b || buf[1] != '[' {
		return false
	}
	last := buf[len(buf)-1]
	return last >= 0x40 && last <= 0x7e
}

// collectReply reads single bytes from r until a complete CSI sequence
// has formed, the deadline passes, or the reply caps out at maxReplyLen.
// pkg/term surfaces an expired VTIME read deadline as io.EOF with zero
// bytes; that is a poll coming up empty, not a failure, so reads keep
// going until the wall-clock deadline. Partial bytes collected before
// the deadline are not returned: an incomplete reply is no reply.
func collectReply(r io.Reader, deadline time.Time) (Reply, error) {
	var result []byte
	buffer := make([]byte, 1)
	for {
		n, err := r.Read(buffer)
		if n > 0 {
			result = append(result, buffer[0])
			if csiComplete(result) || len(result) >= maxReplyLen {
				return Received(result), nil
			}
		}
		if err != nil && err != io.EOF {
			return NoReply(), err
		}
		if time.Now().After(deadline) {
			return Received(nil), nil
		}
	}
}

// Roundtrip implements Transport: it writes the query and collects reply
// bytes until a complete CSI sequence has formed or the timeout elapses.
// A timeout yields a present, empty reply; only a connection-level read
// or write failure yields an absent one.
func (tty *TTY) Roundtrip(query []byte) (Reply, error) {
	if err := tty.WriteString(string(query)); err != nil {
		return NoReply(), err
	}
	reply, err := collectReply(tty.t, time.Now().Add(tty.timeout))
	if err != nil {
		return NoReply(), err
	}
	if len(reply.Data) == 0 {
		// Discard whatever straggles in after the deadline, so a slow
		// terminal cannot leave half a reply on the stream.
		tty.t.Flush()
	}
	return reply, nil
}

// EnableEnhancements pushes the given flags onto the terminal's
// enhancement stack, turning the corresponding key reporting on.
func (tty *TTY) EnableEnhancements(f Flags) error {
	return tty.WriteString(PushFlags(f))
}

// RestoreEnhancements pops the entry pushed by EnableEnhancements.
func (tty *TTY) RestoreEnhancements() error {
	return tty.WriteString(PopFlags(1))
}

// ReadSequence reads one key's worth of bytes: a single character, or a
// complete escape sequence. The first read blocks; when it yields a lone
// ESC or a partial sequence, short timed follow-up reads collect the
// rest, since the remaining bytes of a sequence arrive close together.
func (tty *TTY) ReadSequence() ([]byte, error) {
	buf := make([]byte, maxReplyLen)

	// Save the timeout before SetTimeout(0) overwrites it
	savedTimeout := tty.timeout

	tty.RawMode()
	tty.SetTimeout(0) // VMIN=1: block until at least 1 byte
	defer tty.SetTimeout(savedTimeout)

	n, err := tty.t.Read(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	if buf[0] == 0x1b && !csiComplete(buf[:n]) {
		tty.SetTimeout(50 * time.Millisecond)
		for n < len(buf) {
			m, err := tty.t.Read(buf[n:])
			if err != nil || m == 0 {
				break
			}
			n += m
			if csiComplete(buf[:n]) {
				break
			}
		}
	}

	out := make([]byte, n)
	copy(out, buf[:n])
	return out, nil
}
