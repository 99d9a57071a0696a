package network

import "errors"

// Sentinel errors for network construction.
var (
	// ErrStartOutOfRange indicates the start index does not name a valve.
	ErrStartOutOfRange = errors.New("network: start valve out of range")

	// ErrNegativeFlow indicates a valve with a negative flow rate.
	ErrNegativeFlow = errors.New("network: negative flow rate")

	// ErrBadTunnel indicates a tunnel to a missing valve, to itself, a repeated
	// tunnel, or a non-positive distance.
	ErrBadTunnel = errors.New("network: bad tunnel")

	// ErrAsymmetric indicates a tunnel without a matching reverse tunnel.
	ErrAsymmetric = errors.New("network: asymmetric tunnel")

	// ErrEmptyLabel indicates a Builder valve without a label.
	ErrEmptyLabel = errors.New("network: valve label is empty")

	// ErrDuplicateLabel indicates two valves share a label.
	ErrDuplicateLabel = errors.New("network: duplicate valve label")

	// ErrUnknownLabel indicates a reference to a label that was never declared.
	ErrUnknownLabel = errors.New("network: unknown valve label")

	// ErrNoStart indicates the start label was never declared.
	ErrNoStart = errors.New("network: start valve not found")

	// ErrSyntax indicates a malformed input line.
	ErrSyntax = errors.New("network: syntax error")
)

// StartLabel is the label of the room every actor starts in.
const StartLabel = "AA"

// Tunnel connects a valve to neighbor To; walking it takes Dist minutes.
type Tunnel struct {
	To   int
	Dist int
}

// Valve is a room with a pressure-release valve.
//
// A Flow of zero means the room only connects others; opening it is pointless.
type Valve struct {
	// Label is the room name from the input, e.g. "AA". May be empty for
	// programmatically built networks.
	Label string

	// Flow is the pressure released per minute once the valve is open.
	Flow int

	// Tunnels lists the neighbors in insertion order.
	Tunnels []Tunnel
}

// Network is a validated, read-only valve network.
//
// Obtain one from New, Builder.Build, or Parse. Callers must not modify the
// slices returned by Tunnels.
type Network struct {
	valves  []Valve
	start   int
	byLabel map[string]int
}
