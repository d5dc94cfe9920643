package graph

// Packet is the unit carried between nodes: enqueued on a per-node queue
// or scheduled for delivery by internal/simstate.
type Packet struct {
	Src      string
	Dst      string
	Payload  []byte
	Protocol string
	TTL      int
	DelayMs  int
	Priority int

	// TCP control fields.
	Syn     bool
	Ack     bool
	SeqNum  int
	AckNum  int

	// Fragmentation fields.
	FragmentID   int
	FragmentSeq  int
	LastFragment bool
}

// DefaultTTL is the TTL assigned to a Packet that does not set one
// explicitly. TTL expiry and decrement are left to callers that want
// them; set it before handing the packet to the kernel/queue.
const DefaultTTL = 64

// NewPacket builds a Packet with the package's documented defaults
// (TTL=64, Priority=0).
func NewPacket(src, dst, protocol string, payload []byte) Packet {
	return Packet{
		Src:      src,
		Dst:      dst,
		Payload:  payload,
		Protocol: protocol,
		TTL:      DefaultTTL,
	}
}
