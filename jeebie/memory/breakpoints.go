package memory

// AccessKind distinguishes which kind of bus access a breakpoint should
// trigger on.
type AccessKind uint8

const (
	AccessRead AccessKind = 1 << iota
	AccessWrite
	AccessExecute
)

// Breakpoint watches a range of addresses [Address, Address+Length) for
// reads, writes, or both.
type Breakpoint struct {
	Address uint16
	Length  uint16
	Kind    AccessKind
	Enabled bool
}

func (b *Breakpoint) matches(address uint16, kind AccessKind) bool {
	if !b.Enabled || b.Kind&kind == 0 {
		return false
	}
	length := b.Length
	if length == 0 {
		length = 1
	}
	return address >= b.Address && address < b.Address+length
}

// Breakpoints tracks a set of address watches against the bus and latches
// the most recent hit so a debugger REPL can inspect it after a Step/Run
// loop stops. It does not itself halt execution; callers poll Hit() after
// ticking the CPU.
type Breakpoints struct {
	points []*Breakpoint
	hit    *Breakpoint
	hitAt  uint16
}

// NewBreakpoints creates an empty breakpoint set.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{}
}

// Add registers a new breakpoint and returns it so callers can later
// disable or remove it.
func (b *Breakpoints) Add(address uint16, length uint16, kind AccessKind) *Breakpoint {
	bp := &Breakpoint{Address: address, Length: length, Kind: kind, Enabled: true}
	b.points = append(b.points, bp)
	return bp
}

// Remove deletes a breakpoint previously returned by Add.
func (b *Breakpoints) Remove(bp *Breakpoint) {
	for i, p := range b.points {
		if p == bp {
			b.points = append(b.points[:i], b.points[i+1:]...)
			return
		}
	}
}

// List returns all currently registered breakpoints.
func (b *Breakpoints) List() []*Breakpoint {
	return b.points
}

// Clear removes every registered breakpoint.
func (b *Breakpoints) Clear() {
	b.points = nil
	b.hit = nil
}

// Check records a bus access and latches it if it matches a breakpoint.
// Returns true if this access triggered a (new) hit.
func (b *Breakpoints) Check(address uint16, kind AccessKind) bool {
	if b == nil {
		return false
	}
	for _, bp := range b.points {
		if bp.matches(address, kind) {
			b.hit = bp
			b.hitAt = address
			return true
		}
	}
	return false
}

// CheckPC is a convenience wrapper for execute breakpoints, called by the
// orchestrator before each instruction fetch rather than from the bus.
func (b *Breakpoints) CheckPC(pc uint16) bool {
	return b.Check(pc, AccessExecute)
}

// Hit returns the most recently latched breakpoint and the address that
// triggered it, if any, then clears the latch.
func (b *Breakpoints) Hit() (*Breakpoint, uint16, bool) {
	if b == nil || b.hit == nil {
		return nil, 0, false
	}
	bp, addr := b.hit, b.hitAt
	b.hit = nil
	return bp, addr, true
}
