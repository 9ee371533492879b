package kittykeys

// Reply is the result of one transport round trip. Absent marks a
// connection-level non-response and is distinct from a reply that is
// present but empty: a healthy terminal that simply does not implement
// the protocol produces an empty reply when the wait runs out, while a
// dead pty or closed stream produces an absent one. EnabledFlags relies
// on this distinction; Supported does not.
type Reply struct {
	Absent bool
	Data   []byte
}

// NoReply returns the absent reply.
func NoReply() Reply {
	return Reply{Absent: true}
}

// Received wraps bytes read from the terminal in a present reply.
func Received(data []byte) Reply {
	return Reply{Data: data}
}

// parseFlagsReply validates a flags reply against the exact wire shape
// ESC '[' '?' D 'u' with one or two decimal digits and nothing else.
// No leading or trailing bytes are tolerated: a confused terminal, a
// non-interactive pipe or mid-stream ssh noise must classify as
// unsupported rather than be stripped into a false positive.
func parseFlagsReply(data []byte) (Flags, bool) {
	n := len(data)
	if n < 5 || n > 6 {
		return 0, false
	}
	if data[0] != 0x1b || data[1] != '[' || data[2] != '?' || data[n-1] != 'u' {
		return 0, false
	}
	v := 0
	for _, b := range data[3 : n-1] {
		if b < '0' || b > '9' {
			return 0, false
		}
		v = v*10 + int(b-'0')
	}
	return Flags(v), true
}
