package avr

import (
	"encoding/binary"
	"errors"
)

// machineSerializeVersion is incremented whenever the binary layout changes.
const machineSerializeVersion = 1

// fixedSerializeSize is the portion of Serialize's output whose size does
// not depend on the device's flash/SRAM capacity: version, R, IO, PC, SP,
// SREG, SKIP, plus the two length prefixes for SRAM and PROG.
const fixedSerializeSize = 1 + 32 + 64 + 2 + 2 + 1 + 1 + 4 + 4

// SerializeSize returns the number of bytes needed for Serialize, which
// depends on the machine's configured SRAM and flash sizes.
func (m *Machine) SerializeSize() int {
	return fixedSerializeSize + len(m.SRAM) + 2*len(m.PROG)
}

// Serialize writes the full machine state into buf, which must be at least
// SerializeSize() bytes. The device configuration itself is not included;
// the caller is expected to deserialize into a Machine already constructed
// with the matching DeviceConfig.
func (m *Machine) Serialize(buf []byte) error {
	if len(buf) < m.SerializeSize() {
		return errors.New("avr: serialize buffer too small")
	}

	be := binary.BigEndian
	buf[0] = machineSerializeVersion
	off := 1

	copy(buf[off:], m.R[:])
	off += 32
	copy(buf[off:], m.IO[:])
	off += 64

	be.PutUint16(buf[off:], m.PC)
	off += 2
	be.PutUint16(buf[off:], m.SP)
	off += 2

	buf[off] = m.sregByte()
	off++
	buf[off] = boolByte(m.SKIP)
	off++

	be.PutUint32(buf[off:], uint32(len(m.SRAM)))
	off += 4
	copy(buf[off:], m.SRAM)
	off += len(m.SRAM)

	be.PutUint32(buf[off:], uint32(len(m.PROG)))
	off += 4
	for _, w := range m.PROG {
		be.PutUint16(buf[off:], w)
		off += 2
	}
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores machine state from buf. The SRAM and PROG slices
// must already be sized to match the device configuration used when buf
// was produced; a length mismatch is reported rather than silently
// resizing the machine's memory out from under its DeviceConfig.
func (m *Machine) Deserialize(buf []byte) error {
	if len(buf) < fixedSerializeSize {
		return errors.New("avr: deserialize buffer too small")
	}
	if buf[0] != machineSerializeVersion {
		return errors.New("avr: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	copy(m.R[:], buf[off:off+32])
	off += 32
	copy(m.IO[:], buf[off:off+64])
	off += 64

	m.PC = be.Uint16(buf[off:])
	off += 2
	m.SP = be.Uint16(buf[off:])
	off += 2

	m.setSREGByte(buf[off])
	off++
	m.SKIP = buf[off] != 0
	off++

	sramLen := int(be.Uint32(buf[off:]))
	off += 4
	if sramLen != len(m.SRAM) {
		return errors.New("avr: deserialize SRAM size mismatch")
	}
	copy(m.SRAM, buf[off:off+sramLen])
	off += sramLen

	progLen := int(be.Uint32(buf[off:]))
	off += 4
	if progLen != len(m.PROG) {
		return errors.New("avr: deserialize PROG size mismatch")
	}
	for i := 0; i < progLen; i++ {
		m.PROG[i] = be.Uint16(buf[off:])
		off += 2
	}
	return nil
}
