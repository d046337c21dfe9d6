package avr

// DeviceConfig parameterizes the simulated part's memory geometry, the Go
// analogue of the original's MCU_ATtiny85 compile-time macro.
type DeviceConfig struct {
	FlashWords int // size of PROG in 16-bit words
	SRAMBytes  int // size of the general SRAM region above the I/O space
	Name       string
}

// DeviceATtiny85 is the canonical target: 4096 words of flash, 512 bytes of
// SRAM.
var DeviceATtiny85 = DeviceConfig{
	FlashWords: 4096,
	SRAMBytes:  512,
	Name:       "ATtiny85",
}

// Data-address layout: registers, then I/O space, then general SRAM.
const (
	regBase = 0
	ioBase  = 32
	sramBase = 96
)

// Machine is the complete mutable state of one simulated core: 32 general
// registers, 64 bytes of I/O space, general SRAM, word-addressable program
// memory, the status register, program counter, stack pointer, and the
// pending-skip latch.
type Machine struct {
	R    [32]uint8
	IO   [64]uint8
	SRAM []uint8
	PROG []uint16

	PC uint16
	SP uint16

	SREG [8]bool
	SKIP bool

	cfg      DeviceConfig
	pcMask   uint16
	dataSize int
}

// NewMachine allocates a zeroed machine sized per cfg. SP starts at the top
// of SRAM; callers normally re-point it there explicitly once the program is
// loaded, but NewMachine leaves it correctly initialized regardless.
func NewMachine(cfg DeviceConfig) *Machine {
	m := &Machine{
		cfg:      cfg,
		PROG:     make([]uint16, cfg.FlashWords),
		SRAM:     make([]uint8, cfg.SRAMBytes),
		pcMask:   uint16(cfg.FlashWords - 1),
		dataSize: sramBase + cfg.SRAMBytes,
	}
	m.SP = uint16(m.dataSize - 1)
	return m
}

// Config returns the device configuration the machine was constructed with.
func (m *Machine) Config() DeviceConfig { return m.cfg }

// GetPC returns the program counter, a word address.
func (m *Machine) GetPC() uint16 { return m.PC }

// SetPC sets the program counter, masked to the device's flash size.
func (m *Machine) SetPC(addr uint16) { m.PC = addr & m.pcMask }

// GetDataMem reads one byte of data memory, honoring the register/I-O/SRAM
// aliasing: addresses 0..31 are the register file, 32..95 are the I/O
// space, 96.. is general SRAM.
func (m *Machine) GetDataMem(addr uint16) (uint8, error) {
	a := int(addr)
	switch {
	case a < ioBase:
		return m.R[a-regBase], nil
	case a < sramBase:
		return m.IO[a-ioBase], nil
	case a < m.dataSize:
		return m.SRAM[a-sramBase], nil
	default:
		return 0, addressOutOfRangeError("data", a)
	}
}

// SetDataMem writes one byte of data memory, honoring the same aliasing as
// GetDataMem.
func (m *Machine) SetDataMem(addr uint16, v uint8) error {
	a := int(addr)
	switch {
	case a < ioBase:
		m.R[a-regBase] = v
	case a < sramBase:
		m.IO[a-ioBase] = v
	case a < m.dataSize:
		m.SRAM[a-sramBase] = v
	default:
		return addressOutOfRangeError("data", a)
	}
	return nil
}

// GetProgMem returns the 16-bit word at word address wordAddr.
func (m *Machine) GetProgMem(wordAddr uint16) (uint16, error) {
	if int(wordAddr) >= len(m.PROG) {
		return 0, addressOutOfRangeError("program", int(wordAddr))
	}
	return m.PROG[wordAddr], nil
}

// GetProgMemByte returns the byte at byte address byteAddr; the low byte of
// word i lives at byte address 2i, the high byte at 2i+1.
func (m *Machine) GetProgMemByte(byteAddr uint16) (uint8, error) {
	w, err := m.GetProgMem(byteAddr / 2)
	if err != nil {
		return 0, err
	}
	if byteAddr%2 == 0 {
		return uint8(w), nil
	}
	return uint8(w >> 8), nil
}

// XAddr, YAddr, ZAddr return the 16-bit pointer-pair values; SetXAddr,
// SetYAddr, SetZAddr set them. X = R27:R26, Y = R29:R28, Z = R31:R30.
func (m *Machine) XAddr() uint16 { return Get16(m.R[27], m.R[26]) }
func (m *Machine) YAddr() uint16 { return Get16(m.R[29], m.R[28]) }
func (m *Machine) ZAddr() uint16 { return Get16(m.R[31], m.R[30]) }

func (m *Machine) SetXAddr(v uint16) { Set16(&m.R[27], &m.R[26], v) }
func (m *Machine) SetYAddr(v uint16) { Set16(&m.R[29], &m.R[28], v) }
func (m *Machine) SetZAddr(v uint16) { Set16(&m.R[31], &m.R[30], v) }

// PushStack8 writes v at the current SP, then decrements SP.
func (m *Machine) PushStack8(v uint8) error {
	if err := m.SetDataMem(m.SP, v); err != nil {
		return err
	}
	if m.SP == 0 {
		return ErrStackOverflow
	}
	m.SP--
	return nil
}

// PopStack8 increments SP, then reads the byte there.
func (m *Machine) PopStack8() (uint8, error) {
	if int(m.SP)+1 >= m.dataSize {
		return 0, ErrStackUnderflow
	}
	m.SP++
	return m.GetDataMem(m.SP)
}

// PushStack16 pushes the high byte of v, then the low byte — equivalent to
// big-endian on a descending stack.
func (m *Machine) PushStack16(v uint16) error {
	if err := m.PushStack8(uint8(v >> 8)); err != nil {
		return err
	}
	return m.PushStack8(uint8(v))
}

// PopStack16 mirrors PushStack16: pops the low byte, then the high byte.
func (m *Machine) PopStack16() (uint16, error) {
	lo, err := m.PopStack8()
	if err != nil {
		return 0, err
	}
	hi, err := m.PopStack8()
	if err != nil {
		return 0, err
	}
	return Get16(hi, lo), nil
}
