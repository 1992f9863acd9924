package uri

// DerivationRuns returns how many derivation phases ran on the value so far.
func DerivationRuns(r interface{ runCount() int }) int { return r.runCount() }

func (c *core) runCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.off.runs
}

// Offsets derives and returns the seven component boundaries followed by the buffer length.
func Offsets(r interface{ allOffsets() [8]int }) [8]int { return r.allOffsets() }

func (c *core) allOffsets() [8]int {
	b, o := c.snapshot(phaseAll)
	return [8]int{
		o.schemeEnd,
		o.authStart,
		o.userInfoEnd,
		o.portStart,
		o.authEnd,
		o.queryStart,
		o.fragmentStart,
		len(b),
	}
}
