package avr

import "testing"

func TestADDFlags(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0xFF
	m.R[2] = 0x01
	// ADD R1, R2
	m.PROG[0] = 0b0000_1100_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0x00 {
		t.Fatalf("R1 = %#x, want 0", m.R[1])
	}
	if !m.GetStatusFlag(FlagZ) {
		t.Fatalf("Z not set")
	}
	if !m.GetStatusFlag(FlagC) {
		t.Fatalf("C not set")
	}
	if m.GetPC() != 1 {
		t.Fatalf("PC = %d, want 1", m.GetPC())
	}
}

func TestADCUsesIncomingCarry(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 1
	m.R[2] = 1
	m.SetStatusFlag(FlagC)
	// ADC R1, R2
	m.PROG[0] = 0b0001_1100_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 3 {
		t.Fatalf("R1 = %d, want 3", m.R[1])
	}
}

func TestCPCPreservesZeroFlagOnZeroResult(t *testing.T) {
	m := newTestMachine()
	m.R[1], m.R[2] = 5, 5
	m.SetStatusFlag(FlagZ) // simulate "equal so far" from a previous CP
	// CPC R1, R2
	m.PROG[0] = 0b0000_0100_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !m.GetStatusFlag(FlagZ) {
		t.Fatalf("Z cleared on zero result, want preserved")
	}
}

func TestCPCClearsZeroFlagOnNonzeroResult(t *testing.T) {
	m := newTestMachine()
	m.R[1], m.R[2] = 5, 3
	m.SetStatusFlag(FlagZ)
	// CPC R1, R2
	m.PROG[0] = 0b0000_0100_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.GetStatusFlag(FlagZ) {
		t.Fatalf("Z set on nonzero result, want cleared")
	}
}

func TestNEGFlags(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 1
	// NEG R1
	m.PROG[0] = 0b1001_0100_0001_0001

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0xFF {
		t.Fatalf("R1 = %#x, want 0xFF", m.R[1])
	}
	if !m.GetStatusFlag(FlagC) {
		t.Fatalf("C not set for nonzero NEG result")
	}

	m2 := newTestMachine()
	m2.R[1] = 0
	m2.PROG[0] = 0b1001_0100_0001_0001
	if err := Step(m2); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m2.GetStatusFlag(FlagC) {
		t.Fatalf("C set for zero NEG result, want cleared")
	}
}

func TestINCOverflow(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0x7F
	// INC R1
	m.PROG[0] = 0b1001_0100_0001_0011

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0x80 {
		t.Fatalf("R1 = %#x, want 0x80", m.R[1])
	}
	if !m.GetStatusFlag(FlagV) {
		t.Fatalf("V not set on signed overflow 0x7F -> 0x80")
	}
}

func TestMULUnsigned(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 200
	m.R[2] = 200
	// MUL R1, R2
	m.PROG[0] = 0b1001_1100_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := uint16(200 * 200)
	got := Get16(m.R[1], m.R[0])
	if got != want {
		t.Fatalf("R1:R0 = %d, want %d", got, want)
	}
}

func TestADIWSBIWRoundTrip(t *testing.T) {
	m := newTestMachine()
	m.R[24], m.R[25] = 0, 0
	// ADIW R25:R24, 5  (d field encodes (24-24)/2=0, K=5)
	m.PROG[0] = 0b1001_0110_0000_0101
	// SBIW R25:R24, 5
	m.PROG[1] = 0b1001_0111_0000_0101

	if err := Step(m); err != nil {
		t.Fatalf("Step 1: %v", err)
	}
	if Get16(m.R[25], m.R[24]) != 5 {
		t.Fatalf("after ADIW, pair = %d, want 5", Get16(m.R[25], m.R[24]))
	}

	if err := Step(m); err != nil {
		t.Fatalf("Step 2: %v", err)
	}
	if Get16(m.R[25], m.R[24]) != 0 {
		t.Fatalf("after SBIW, pair = %d, want 0", Get16(m.R[25], m.R[24]))
	}
}

func TestSBIWSetsOverflowOnSignedBoundaryCrossing(t *testing.T) {
	m := newTestMachine()
	m.R[24], m.R[25] = 0x00, 0x80 // pair = 0x8000
	// SBIW R25:R24, 1
	m.PROG[0] = 0b1001_0111_0000_0001

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if Get16(m.R[25], m.R[24]) != 0x7FFF {
		t.Fatalf("pair = %#x, want 0x7FFF", Get16(m.R[25], m.R[24]))
	}
	if !m.GetStatusFlag(FlagV) {
		t.Fatalf("V not set crossing 0x8000 -> 0x7FFF")
	}
	if m.GetStatusFlag(FlagN) {
		t.Fatalf("N set, want clear (result is positive)")
	}
	if !m.GetStatusFlag(FlagS) {
		t.Fatalf("S = N^V not set, want true (N=0, V=1)")
	}
}
