package avr

func init() {
	registerBCLR()
	registerBSET()
	registerBLD()
	registerBST()
	registerCBI()
	registerSBI()
	registerSBIC()
	registerSBIS()
	registerSBRC()
	registerSBRS()
	registerLSL()
	registerLSR()
	registerROL()
	registerROR()
	registerSWAP()
}

// --- BCLR / BSET ---

// registerBCLR registers BCLR s: clears SREG bit s.
// Encoding: 1001 0100 1sss 1000
func registerBCLR() {
	registerInsn(&insn{
		mnemonic: "BCLR",
		pattern:  compilePattern("1001_0100_1sss_1000"),
		operation: func(ctx *stepCtx) {
			ctx.m.ClearStatusFlag(int(ctx.s()))
			// Step commits the flag locals to SREG afterwards; refresh them.
			ctx.N, ctx.Z, ctx.C = ctx.m.SREG[FlagN], ctx.m.SREG[FlagZ], ctx.m.SREG[FlagC]
			ctx.V, ctx.S, ctx.H = ctx.m.SREG[FlagV], ctx.m.SREG[FlagS], ctx.m.SREG[FlagH]
		},
		pcPostInc: 1,
	})
}

// registerBSET registers BSET s: sets SREG bit s.
// Encoding: 1001 0100 0sss 1000
func registerBSET() {
	registerInsn(&insn{
		mnemonic: "BSET",
		pattern:  compilePattern("1001_0100_0sss_1000"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetStatusFlag(int(ctx.s()))
			// Step commits the flag locals to SREG afterwards; refresh them.
			ctx.N, ctx.Z, ctx.C = ctx.m.SREG[FlagN], ctx.m.SREG[FlagZ], ctx.m.SREG[FlagC]
			ctx.V, ctx.S, ctx.H = ctx.m.SREG[FlagV], ctx.m.SREG[FlagS], ctx.m.SREG[FlagH]
		},
		pcPostInc: 1,
	})
}

// --- BLD / BST ---

// registerBLD registers BLD Rd, b: copies T into bit b of Rd.
// Encoding: 1111 100d dddd 0bbb
func registerBLD() {
	registerInsn(&insn{
		mnemonic: "BLD",
		pattern:  compilePattern("1111_100d_dddd_0bbb"),
		operation: func(ctx *stepCtx) {
			d := ctx.d()
			if ctx.m.GetStatusFlag(FlagT) {
				ctx.m.R[d] = SetBit(ctx.m.R[d], uint(ctx.b()))
			} else {
				ctx.m.R[d] = ClearBit(ctx.m.R[d], uint(ctx.b()))
			}
		},
		pcPostInc: 1,
	})
}

// registerBST registers BST Rd, b: copies bit b of Rd into T.
// Encoding: 1111 101d dddd 0bbb
func registerBST() {
	registerInsn(&insn{
		mnemonic: "BST",
		pattern:  compilePattern("1111_101d_dddd_0bbb"),
		operation: func(ctx *stepCtx) {
			v := GetBit(ctx.m.R[ctx.d()], uint(ctx.b()))
			if v != 0 {
				ctx.m.SetStatusFlag(FlagT)
			} else {
				ctx.m.ClearStatusFlag(FlagT)
			}
		},
		pcPostInc: 1,
	})
}

// --- CBI / SBI ---

// registerCBI registers CBI A, b: clears bit b of I/O register A.
// Encoding: 1001 1000 AAAA Abbb
func registerCBI() {
	registerInsn(&insn{
		mnemonic: "CBI",
		pattern:  compilePattern("1001_1000_AAAA_Abbb"),
		operation: func(ctx *stepCtx) {
			a := ctx.A()
			ctx.m.IO[a] = ClearBit(ctx.m.IO[a], uint(ctx.b()))
		},
		pcPostInc: 1,
	})
}

// registerSBI registers SBI A, b: sets bit b of I/O register A.
// Encoding: 1001 1010 AAAA Abbb
func registerSBI() {
	registerInsn(&insn{
		mnemonic: "SBI",
		pattern:  compilePattern("1001_1010_AAAA_Abbb"),
		operation: func(ctx *stepCtx) {
			a := ctx.A()
			ctx.m.IO[a] = SetBit(ctx.m.IO[a], uint(ctx.b()))
		},
		pcPostInc: 1,
	})
}

// --- SBIC / SBIS / SBRC / SBRS ---

// registerSBIC registers SBIC A, b: skip next instruction if I/O bit clear.
// Encoding: 1001 1001 AAAA Abbb
func registerSBIC() {
	registerInsn(&insn{
		mnemonic: "SBIC",
		pattern:  compilePattern("1001_1001_AAAA_Abbb"),
		operation: func(ctx *stepCtx) {
			if !TestBit(ctx.m.IO[ctx.A()], uint(ctx.b())) {
				ctx.m.SKIP = true
			}
		},
		pcPostInc: 1,
	})
}

// registerSBIS registers SBIS A, b: skip next instruction if I/O bit set.
// Encoding: 1001 1011 AAAA Abbb
func registerSBIS() {
	registerInsn(&insn{
		mnemonic: "SBIS",
		pattern:  compilePattern("1001_1011_AAAA_Abbb"),
		operation: func(ctx *stepCtx) {
			if TestBit(ctx.m.IO[ctx.A()], uint(ctx.b())) {
				ctx.m.SKIP = true
			}
		},
		pcPostInc: 1,
	})
}

// registerSBRC registers SBRC Rr, b: skip next instruction if register bit
// clear.
// Encoding: 1111 110r rrrr 0bbb
func registerSBRC() {
	registerInsn(&insn{
		mnemonic: "SBRC",
		pattern:  compilePattern("1111_110r_rrrr_0bbb"),
		operation: func(ctx *stepCtx) {
			if !TestBit(ctx.m.R[ctx.r()], uint(ctx.b())) {
				ctx.m.SKIP = true
			}
		},
		pcPostInc: 1,
	})
}

// registerSBRS registers SBRS Rr, b: skip next instruction if register bit
// set.
// Encoding: 1111 111r rrrr 0bbb
func registerSBRS() {
	registerInsn(&insn{
		mnemonic: "SBRS",
		pattern:  compilePattern("1111_111r_rrrr_0bbb"),
		operation: func(ctx *stepCtx) {
			if TestBit(ctx.m.R[ctx.r()], uint(ctx.b())) {
				ctx.m.SKIP = true
			}
		},
		pcPostInc: 1,
	})
}

// --- LSL / LSR / ROL / ROR ---

// registerLSL registers LSL Rd: logical shift left. Shares ADD's encoding
// (LSL Rd is ADD Rd, Rd); selected over ADD by the r==d precondition.
// Encoding: 0000 11rd dddd rrrr
func registerLSL() {
	registerInsn(&insn{
		mnemonic: "LSL",
		pattern:  compilePattern("0000_11rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}},
		precondition: func(ctx *stepCtx) bool {
			return ctx.r() == ctx.d()
		},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() << 1) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("N ^ C"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("Rd7"),
		pcPostInc: 1,
	})
}

// registerLSR registers LSR Rd: logical shift right, N forced to 0.
// Encoding: 1001 010d dddd 0110
func registerLSR() {
	registerInsn(&insn{
		mnemonic: "LSR",
		pattern:  compilePattern("1001_010d_dddd_0110"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = ctx.Rd() >> 1
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("N ^ C"),
		flagN:     parseFlagExpr("0"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("Rd0"),
		pcPostInc: 1,
	})
}

// registerROL registers ROL Rd: rotate left through carry. Shares ADC's
// encoding (ROL Rd is ADC Rd, Rd); selected over ADC by the r==d
// precondition.
// Encoding: 0001 11rd dddd rrrr
func registerROL() {
	registerInsn(&insn{
		mnemonic: "ROL",
		pattern:  compilePattern("0001_11rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}},
		precondition: func(ctx *stepCtx) bool {
			return ctx.r() == ctx.d()
		},
		operation: func(ctx *stepCtx) {
			c := uint32(0)
			if ctx.C {
				c = 1
			}
			ctx.R = ((ctx.Rd() << 1) | c) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("N ^ C"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("Rd7"),
		pcPostInc: 1,
	})
}

// registerROR registers ROR Rd: rotate right through carry.
// Encoding: 1001 010d dddd 0111
func registerROR() {
	registerInsn(&insn{
		mnemonic: "ROR",
		pattern:  compilePattern("1001_010d_dddd_0111"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			c := uint32(0)
			if ctx.C {
				c = 0x80
			}
			ctx.R = (ctx.Rd() >> 1) | c
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("N ^ C"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("Rd0"),
		pcPostInc: 1,
	})
}

// --- SWAP ---

// registerSWAP registers SWAP Rd: swaps the two nibbles of Rd. No flags.
// Encoding: 1001 010d dddd 0010
func registerSWAP() {
	registerInsn(&insn{
		mnemonic: "SWAP",
		pattern:  compilePattern("1001_010d_dddd_0010"),
		operation: func(ctx *stepCtx) {
			d := ctx.d()
			v := ctx.m.R[d]
			ctx.m.R[d] = (v << 4) | (v >> 4)
		},
		pcPostInc: 1,
	})
}
