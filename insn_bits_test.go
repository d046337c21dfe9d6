package avr

import "testing"

func TestLSLDisambiguatesFromADDByPrecondition(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0x81
	// Shares ADD's encoding (r==d selects LSL): LSL R1
	m.PROG[0] = 0b0000_1100_0001_0001

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0x02 {
		t.Fatalf("R1 = %#x, want 0x02", m.R[1])
	}
	if !m.GetStatusFlag(FlagC) {
		t.Fatalf("C not set, want set from the vacated bit 7")
	}
}

func TestROLDisambiguatesFromADCByPrecondition(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0x01
	m.SetStatusFlag(FlagC)
	// Shares ADC's encoding (r==d selects ROL): ROL R1
	m.PROG[0] = 0b0001_1100_0001_0001

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0x03 {
		t.Fatalf("R1 = %#x, want 0x03 (shifted in the old carry)", m.R[1])
	}
}

func TestBSTThenBLDCopiesBitThroughT(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0x08 // bit 3 set
	// BST R1, 3
	m.PROG[0] = 0b1111_1010_0001_0011
	// BLD R2, 3
	m.PROG[1] = 0b1111_1000_0010_0011

	if err := Step(m); err != nil {
		t.Fatalf("Step 1: %v", err)
	}
	if !m.GetStatusFlag(FlagT) {
		t.Fatalf("T not set after BST of a set bit")
	}

	if err := Step(m); err != nil {
		t.Fatalf("Step 2: %v", err)
	}
	if m.R[2] != 0x08 {
		t.Fatalf("R2 = %#x, want 0x08", m.R[2])
	}
}

func TestSBRCSkipsNextInstructionWhenBitClear(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0 // bit 0 clear
	// SBRC R1, 0
	m.PROG[0] = 0b1111_1100_0001_0000
	// LDI R16, 1 -- must be skipped
	m.PROG[1] = 0b1110_0000_0000_0001
	// LDI R16, 2 -- executes next
	m.PROG[2] = 0b1110_0000_0000_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step 1 (SBRC): %v", err)
	}
	if !m.SKIP {
		t.Fatalf("SKIP not latched")
	}

	if err := Step(m); err != nil {
		t.Fatalf("Step 2 (skipped LDI): %v", err)
	}
	if m.SKIP {
		t.Fatalf("SKIP not cleared after the skipped instruction")
	}
	if m.R[16] != 0 {
		t.Fatalf("R16 = %d after skip, want untouched (0)", m.R[16])
	}

	if err := Step(m); err != nil {
		t.Fatalf("Step 3: %v", err)
	}
	if m.R[16] != 2 {
		t.Fatalf("R16 = %d, want 2", m.R[16])
	}
}

func TestCBIClearsIOBit(t *testing.T) {
	m := newTestMachine()
	m.IO[5] = 0b00000100
	// CBI 5, 2
	m.PROG[0] = 0b1001_1000_0010_1010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.IO[5] != 0 {
		t.Fatalf("IO[5] = %#x, want 0", m.IO[5])
	}
}

func TestSWAPNibbles(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0xA5
	// SWAP R1
	m.PROG[0] = 0b1001_0100_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0x5A {
		t.Fatalf("R1 = %#x, want 0x5A", m.R[1])
	}
}
