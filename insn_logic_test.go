package avr

import "testing"

func TestANDClearsVAndSetsZ(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0xF0
	m.R[2] = 0x0F
	// AND R1, R2
	m.PROG[0] = 0b0010_0000_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0 {
		t.Fatalf("R1 = %#x, want 0", m.R[1])
	}
	if !m.GetStatusFlag(FlagZ) {
		t.Fatalf("Z not set")
	}
	if m.GetStatusFlag(FlagV) {
		t.Fatalf("V set, want cleared")
	}
}

func TestANDIClearsNegativeForPositiveResult(t *testing.T) {
	m := newTestMachine()
	m.R[16] = 0xFF
	// ANDI R16, 0x0F
	m.PROG[0] = 0b0111_0000_0000_1111

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[16] != 0x0F {
		t.Fatalf("R16 = %#x, want 0x0F", m.R[16])
	}
	if m.GetStatusFlag(FlagN) {
		t.Fatalf("N set for positive result")
	}
}

func TestOR(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0xF0
	m.R[2] = 0x0F
	// OR R1, R2
	m.PROG[0] = 0b0010_1000_0001_0010

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0xFF {
		t.Fatalf("R1 = %#x, want 0xFF", m.R[1])
	}
	if !m.GetStatusFlag(FlagN) {
		t.Fatalf("N not set for 0xFF result")
	}
}

func TestORI(t *testing.T) {
	m := newTestMachine()
	m.R[16] = 0xF0
	// ORI R16, 0x0F
	m.PROG[0] = 0b0110_0000_0000_1111

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[16] != 0xFF {
		t.Fatalf("R16 = %#x, want 0xFF", m.R[16])
	}
}

func TestEORSelfZeroesRegister(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 0x5A
	// EOR R1, R1
	m.PROG[0] = 0b0010_0100_0001_0001

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.R[1] != 0 {
		t.Fatalf("R1 = %#x, want 0", m.R[1])
	}
	if !m.GetStatusFlag(FlagZ) {
		t.Fatalf("Z not set")
	}
}
