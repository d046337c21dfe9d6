package avr

func init() {
	registerBRBC()
	registerBRBS()
	registerCALL()
	registerCPSE()
	registerIJMP()
	registerJMP()
	registerRCALL()
	registerRET()
	registerRJMP()
}

// --- BRBC / BRBS ---

// registerBRBC registers BRBC s, k: branch if SREG bit s is clear. The
// offset k is relative to the address of the instruction following this
// one, which falls out of the default pcPostInc=1 being applied on top of
// operation's SetPC(GetPC()+offset).
// Encoding: 1111 01kk kkkk ksss
func registerBRBC() {
	registerInsn(&insn{
		mnemonic: "BRBC",
		pattern:  compilePattern("1111_01kk_kkkk_ksss"),
		operation: func(ctx *stepCtx) {
			if !ctx.m.GetStatusFlag(int(ctx.s())) {
				ctx.m.SetPC(ctx.m.GetPC() + uint16(ToSigned(ctx.k(), 7)))
			}
		},
		pcPostInc: 1,
	})
}

// registerBRBS registers BRBS s, k: branch if SREG bit s is set.
// Encoding: 1111 00kk kkkk ksss
func registerBRBS() {
	registerInsn(&insn{
		mnemonic: "BRBS",
		pattern:  compilePattern("1111_00kk_kkkk_ksss"),
		operation: func(ctx *stepCtx) {
			if ctx.m.GetStatusFlag(int(ctx.s())) {
				ctx.m.SetPC(ctx.m.GetPC() + uint16(ToSigned(ctx.k(), 7)))
			}
		},
		pcPostInc: 1,
	})
}

// --- CALL / JMP ---

// registerCALL registers CALL k: push the return address, jump to the
// 22-bit absolute word address k. Two-word instruction.
// Encoding: 1001 010k kkkk 111k kkkk kkkk kkkk kkkk
func registerCALL() {
	registerInsn(&insn{
		mnemonic: "CALL",
		pattern:  compilePattern("1001_010k_kkkk_111k_kkkk_kkkk_kkkk_kkkk"),
		operation: func(ctx *stepCtx) {
			ctx.m.PushStack16(ctx.m.GetPC() + 2)
		},
		writeback: func(ctx *stepCtx) { ctx.m.SetPC(uint16(ctx.k())) },
		pcPostInc: 0,
	})
}

// registerJMP registers JMP k: absolute jump to word address k. Two-word
// instruction; pcPostInc is 0 (not the 2 the word count alone would
// suggest) because the jump target is already absolute — see DESIGN.md.
// Encoding: 1001 010k kkkk 110k kkkk kkkk kkkk kkkk
func registerJMP() {
	registerInsn(&insn{
		mnemonic: "JMP",
		pattern:  compilePattern("1001_010k_kkkk_110k_kkkk_kkkk_kkkk_kkkk"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetPC(uint16(ctx.k()))
		},
		pcPostInc: 0,
	})
}

// --- CPSE ---

// registerCPSE registers CPSE Rd, Rr: skip next instruction if Rd == Rr.
// Encoding: 0001 00rd dddd rrrr
func registerCPSE() {
	registerInsn(&insn{
		mnemonic: "CPSE",
		pattern:  compilePattern("0001_00rd_dddd_rrrr"),
		operation: func(ctx *stepCtx) {
			if ctx.m.R[ctx.d()] == ctx.m.R[ctx.r()] {
				ctx.m.SKIP = true
			}
		},
		pcPostInc: 1,
	})
}

// --- IJMP ---

// registerIJMP registers IJMP: jump to the word address held in Z.
// Encoding: 1001 0100 0000 1001
func registerIJMP() {
	registerInsn(&insn{
		mnemonic: "IJMP",
		pattern:  compilePattern("1001_0100_0000_1001"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetPC(ctx.m.ZAddr())
		},
		pcPostInc: 0,
	})
}

// --- RCALL / RET / RJMP ---

// registerRCALL registers RCALL k: push the return address, branch by
// signed offset k relative to the next instruction.
// Encoding: 1101 kkkk kkkk kkkk
func registerRCALL() {
	registerInsn(&insn{
		mnemonic: "RCALL",
		pattern:  compilePattern("1101_kkkk_kkkk_kkkk"),
		operation: func(ctx *stepCtx) {
			ctx.m.PushStack16(ctx.m.GetPC() + 1)
		},
		writeback: func(ctx *stepCtx) {
			ctx.m.SetPC(ctx.m.GetPC() + uint16(ToSigned(ctx.k(), 12)))
		},
		pcPostInc: 1,
	})
}

// registerRET registers RET: pop the return address into PC.
// Encoding: 1001 0101 0000 1000
func registerRET() {
	registerInsn(&insn{
		mnemonic: "RET",
		pattern:  compilePattern("1001_0101_0000_1000"),
		operation: func(ctx *stepCtx) {
			addr, _ := ctx.m.PopStack16()
			ctx.m.SetPC(addr)
		},
		pcPostInc: 0,
	})
}

// registerRJMP registers RJMP k: branch by signed offset k relative to the
// next instruction. k == -1 is the canonical self-loop used to halt a test
// program.
// Encoding: 1100 kkkk kkkk kkkk
func registerRJMP() {
	registerInsn(&insn{
		mnemonic: "RJMP",
		pattern:  compilePattern("1100_kkkk_kkkk_kkkk"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetPC(ctx.m.GetPC() + uint16(ToSigned(ctx.k(), 12)))
		},
		pcPostInc: 1,
	})
}
