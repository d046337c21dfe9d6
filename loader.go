package avr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Load reads a flat little-endian stream of 16-bit program words from r and
// installs them into m's flash starting at word address 0. It is the
// simulator's only supported input format; translating an assembler's or
// linker's output into this stream is the loader's caller's job, not the
// engine's.
func Load(m *Machine, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("avr: read program: %w", err)
	}
	if len(raw)%2 != 0 {
		return fmt.Errorf("avr: program length %d is not a whole number of words", len(raw))
	}

	words := len(raw) / 2
	if words > len(m.PROG) {
		return addressOutOfRangeError("flash", words-1)
	}

	for i := 0; i < words; i++ {
		m.PROG[i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
	}
	return nil
}
