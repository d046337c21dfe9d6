package avr

// GetStatusFlag reports whether SREG bit idx is set.
func (m *Machine) GetStatusFlag(idx int) bool {
	return m.SREG[idx]
}

// SetStatusFlag sets SREG bit idx.
func (m *Machine) SetStatusFlag(idx int) {
	m.SREG[idx] = true
}

// ClearStatusFlag clears SREG bit idx.
func (m *Machine) ClearStatusFlag(idx int) {
	m.SREG[idx] = false
}

// sregByte packs the eight SREG booleans into a single byte, bit i = SREG[i].
// Used by serialization. SREG is kept apart from the I/O space: IN and OUT
// at I/O address 0x3F read and write IO[0x3F], not these flags.
func (m *Machine) sregByte() uint8 {
	var v uint8
	for i := 0; i < 8; i++ {
		if m.SREG[i] {
			v = SetBit(v, uint(i))
		}
	}
	return v
}

// setSREGByte unpacks a byte into the eight SREG booleans.
func (m *Machine) setSREGByte(v uint8) {
	for i := 0; i < 8; i++ {
		m.SREG[i] = TestBit(v, uint(i))
	}
}
