package simstate

import "errors"

// TCPState is one state of the simplified handshake simulator used
// only to report connection success/failure to callers.
type TCPState string

// Recognized states.
const (
	TCPClosed      TCPState = "closed"
	TCPSynSent     TCPState = "syn_sent"
	TCPSynReceived TCPState = "syn_received"
	TCPEstablished TCPState = "established"
)

// ErrInvalidTCPTransition is returned when a synthetic packet arrives
// out of order for the connection's current state.
var ErrInvalidTCPTransition = errors.New("simstate: invalid tcp transition")

// TCPConnection is a single client-perspective handshake: Closed ->
// SynSent -> SynReceived -> Established -> Closed.
type TCPConnection struct {
	state TCPState
}

// NewTCPConnection returns a connection in the Closed state.
func NewTCPConnection() *TCPConnection {
	return &TCPConnection{state: TCPClosed}
}

// State returns the connection's current state.
func (c *TCPConnection) State() TCPState { return c.state }

// Open sends the initial SYN, moving Closed -> SynSent.
func (c *TCPConnection) Open() error {
	if c.state != TCPClosed {
		return ErrInvalidTCPTransition
	}
	c.state = TCPSynSent
	return nil
}

// ReceiveSynAck processes the peer's SYN-ACK, moving SynSent -> SynReceived.
func (c *TCPConnection) ReceiveSynAck() error {
	if c.state != TCPSynSent {
		return ErrInvalidTCPTransition
	}
	c.state = TCPSynReceived
	return nil
}

// ReceiveAck completes the handshake, moving SynReceived -> Established.
func (c *TCPConnection) ReceiveAck() error {
	if c.state != TCPSynReceived {
		return ErrInvalidTCPTransition
	}
	c.state = TCPEstablished
	return nil
}

// Close tears the connection down from any state back to Closed.
func (c *TCPConnection) Close() {
	c.state = TCPClosed
}
