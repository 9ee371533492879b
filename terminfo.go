package kittykeys

import (
	"os"
	"time"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// TerminalInfo describes session properties, read from the environment,
// that affect how a capability probe should be run.
type TerminalInfo struct {
	InTmux   bool
	InScreen bool
	InZellij bool
	OverSSH  bool
	Program  string
}

// GetTerminalInfo inspects the environment for the current session.
func GetTerminalInfo() TerminalInfo {
	return TerminalInfo{
		InTmux:   env.Has("TMUX"),
		InScreen: env.Has("STY"),
		InZellij: env.Has("ZELLIJ"),
		OverSSH:  env.Str("SSH_TTY") != "" || env.Has("SSH_CONNECTION"),
		Program:  env.Str("TERM_PROGRAM", env.Str("TERM")),
	}
}

// Multiplexed reports whether the session runs inside a known terminal
// multiplexer.
func (info TerminalInfo) Multiplexed() bool {
	return info.InTmux || info.InScreen || info.InZellij
}

// ProbeTimeout returns the wall-clock bound for one capability probe.
// Multiplexers forward queries through an extra process and remote ttys
// add network latency, so both get a longer wait.
func (info TerminalInfo) ProbeTimeout() time.Duration {
	d := 50 * time.Millisecond
	if info.Multiplexed() {
		d = 150 * time.Millisecond
	}
	if info.OverSSH {
		d = 300 * time.Millisecond
	}
	return d
}

func defaultProbeTimeout() time.Duration {
	return GetTerminalInfo().ProbeTimeout()
}

// Interactive reports whether stdin and stdout are attached to a
// terminal. Probing a pipe can only time out, so callers may want to
// skip the probe entirely when this is false.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
