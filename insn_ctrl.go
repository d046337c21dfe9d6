package avr

func init() {
	registerNOP()
	registerIN()
	registerOUT()
}

// --- NOP ---

// registerNOP registers NOP: does nothing.
// Encoding: 0000 0000 0000 0000
func registerNOP() {
	registerInsn(&insn{
		mnemonic:  "NOP",
		pattern:   compilePattern("0000_0000_0000_0000"),
		operation: func(ctx *stepCtx) {},
		pcPostInc: 1,
	})
}

// --- IN / OUT ---

// registerIN registers IN Rd, A: Rd := IO[A].
// Encoding: 1011 0AAd dddd AAAA
func registerIN() {
	registerInsn(&insn{
		mnemonic: "IN",
		pattern:  compilePattern("1011_0AAd_dddd_AAAA"),
		operation: func(ctx *stepCtx) {
			ctx.m.R[ctx.d()] = ctx.m.IO[ctx.A()]
		},
		pcPostInc: 1,
	})
}

// registerOUT registers OUT A, Rr: IO[A] := Rr.
// Encoding: 1011 1AAr rrrr AAAA
func registerOUT() {
	registerInsn(&insn{
		mnemonic: "OUT",
		pattern:  compilePattern("1011_1AAr_rrrr_AAAA"),
		operation: func(ctx *stepCtx) {
			ctx.m.IO[ctx.A()] = ctx.m.R[ctx.r()]
		},
		pcPostInc: 1,
	})
}
