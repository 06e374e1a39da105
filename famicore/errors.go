package famicore

import "errors"

// Load-time failures are surfaced to the caller as typed errors so a
// frontend can report "unsupported ROM" without crashing. Runtime decode
// of an opcode with no documented behavior is non-fatal: it is logged once
// per opcode value and executed as a 2-cycle no-op.
var (
	ErrUnsupportedMapper   = errors.New("unsupported mapper")
	ErrMalformedImage      = errors.New("malformed image")
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
)
