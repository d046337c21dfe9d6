package avr

func init() {
	registerAND()
	registerANDI()
	registerOR()
	registerORI()
	registerEOR()
}

// --- AND ---

// registerAND registers AND Rd, Rr: bitwise and.
// Encoding: 0010 00rd dddd rrrr
func registerAND() {
	registerInsn(&insn{
		mnemonic: "AND",
		pattern:  compilePattern("0010_00rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = ctx.Rd() & ctx.Rr()
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		pcPostInc: 1,
	})
}

// --- ANDI ---

// registerANDI registers ANDI Rd, K: bitwise and immediate, Rd in R16..R31.
// Encoding: 0111 KKKK dddd KKKK
func registerANDI() {
	registerInsn(&insn{
		mnemonic:   "ANDI",
		pattern:    compilePattern("0111_KKKK_dddd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 0x10}},
		reads:      []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = ctx.Rd() & ctx.K()
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		pcPostInc: 1,
	})
}

// --- OR ---

// registerOR registers OR Rd, Rr: bitwise or.
// Encoding: 0010 10rd dddd rrrr
func registerOR() {
	registerInsn(&insn{
		mnemonic: "OR",
		pattern:  compilePattern("0010_10rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = ctx.Rd() | ctx.Rr()
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		pcPostInc: 1,
	})
}

// --- ORI ---

// registerORI registers ORI Rd, K: bitwise or immediate, Rd in R16..R31.
// Encoding: 0110 KKKK dddd KKKK
func registerORI() {
	registerInsn(&insn{
		mnemonic:   "ORI",
		pattern:    compilePattern("0110_KKKK_dddd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 0x10}},
		reads:      []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = ctx.Rd() | ctx.K()
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		pcPostInc: 1,
	})
}

// --- EOR ---

// registerEOR registers EOR Rd, Rr: bitwise xor. The idiomatic way to zero
// a register (EOR Rd, Rd).
// Encoding: 0010 01rd dddd rrrr
func registerEOR() {
	registerInsn(&insn{
		mnemonic: "EOR",
		pattern:  compilePattern("0010_01rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = ctx.Rd() ^ ctx.Rr()
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		pcPostInc: 1,
	})
}
