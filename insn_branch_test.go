package avr

import "testing"

func TestIsHaltLoopDetectsSelfRJMP(t *testing.T) {
	m := newTestMachine()
	// RJMP -1
	m.PROG[0] = 0xCFFF

	if !isHaltLoop(m, 0) {
		t.Fatalf("isHaltLoop(0) = false, want true for RJMP -1")
	}
}

func TestCALLThenRETRoundTrip(t *testing.T) {
	m := newTestMachine()
	// CALL 16
	m.PROG[0] = 0x940E
	m.PROG[1] = 0x0010
	// RET, placed at word address 16
	m.PROG[16] = 0x9508

	if err := Step(m); err != nil {
		t.Fatalf("Step (CALL): %v", err)
	}
	if m.GetPC() != 16 {
		t.Fatalf("PC = %d after CALL, want 16", m.GetPC())
	}

	if err := Step(m); err != nil {
		t.Fatalf("Step (RET): %v", err)
	}
	if m.GetPC() != 2 {
		t.Fatalf("PC = %d after RET, want 2 (the CALL's return address)", m.GetPC())
	}
}

func TestBRBCBranchesOnClearFlag(t *testing.T) {
	m := newTestMachine()
	m.ClearStatusFlag(FlagZ)
	// BRBC Z, +2
	m.PROG[0] = 0xF411

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.GetPC() != 3 {
		t.Fatalf("PC = %d, want 3 (branch taken, relative to the next instruction)", m.GetPC())
	}
}

func TestBRBCDoesNotBranchOnSetFlag(t *testing.T) {
	m := newTestMachine()
	m.SetStatusFlag(FlagZ)
	// BRBC Z, +2
	m.PROG[0] = 0xF411

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.GetPC() != 1 {
		t.Fatalf("PC = %d, want 1 (branch not taken)", m.GetPC())
	}
}

func TestBRBSBranchesOnSetFlag(t *testing.T) {
	m := newTestMachine()
	m.SetStatusFlag(FlagZ)
	// BRBS Z, +2
	m.PROG[0] = 0xF011

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.GetPC() != 3 {
		t.Fatalf("PC = %d, want 3", m.GetPC())
	}
}

func TestCPSESkipsFullTwoWordInstruction(t *testing.T) {
	m := newTestMachine()
	m.R[1] = 42
	// CPSE R1, R1 (always equal)
	m.PROG[0] = 0x1011
	// JMP 0 -- two words, must be fully skipped, never executed
	m.PROG[1] = 0x940C
	m.PROG[2] = 0x0000

	if err := Step(m); err != nil {
		t.Fatalf("Step (CPSE): %v", err)
	}
	if !m.SKIP {
		t.Fatalf("SKIP not latched by CPSE on equal operands")
	}

	if err := Step(m); err != nil {
		t.Fatalf("Step (skipped JMP): %v", err)
	}
	if m.SKIP {
		t.Fatalf("SKIP not cleared")
	}
	if m.GetPC() != 3 {
		t.Fatalf("PC = %d, want 3 (CPSE + skipped two-word JMP)", m.GetPC())
	}
}

func TestRCALLAndRJMPRelativeOffsets(t *testing.T) {
	m := newTestMachine()
	// RJMP +1 (branch to word address 2, skipping over word 1)
	m.PROG[0] = 0xC001

	if err := Step(m); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if m.GetPC() != 2 {
		t.Fatalf("PC = %d, want 2", m.GetPC())
	}

	m2 := newTestMachine()
	// RCALL +1 (push return address 1, branch to word address 2)
	m2.PROG[0] = 0xD001

	if err := Step(m2); err != nil {
		t.Fatalf("Step (RCALL): %v", err)
	}
	if m2.GetPC() != 2 {
		t.Fatalf("PC = %d after RCALL, want 2", m2.GetPC())
	}
	if ret, err := m2.PopStack16(); err != nil || ret != 1 {
		t.Fatalf("return address = %d, %v; want 1, nil", ret, err)
	}
}
