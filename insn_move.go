package avr

func init() {
	registerMOV()
	registerMOVW()
	registerLDI()
	registerLD_X()
	registerLD_Y()
	registerLD_Z()
	registerLDS()
	registerLPM()
	registerPOP()
	registerPUSH()
	registerST_X()
	registerST_Y()
	registerST_Z()
	registerSTS()
}

// --- MOV / MOVW ---

// registerMOV registers MOV Rd, Rr: Rd := Rr.
// Encoding: 0010 11rd dddd rrrr
func registerMOV() {
	registerInsn(&insn{
		mnemonic: "MOV",
		pattern:  compilePattern("0010_11rd_dddd_rrrr"),
		operation: func(ctx *stepCtx) {
			ctx.m.R[ctx.d()] = ctx.m.R[ctx.r()]
		},
		pcPostInc: 1,
	})
}

// registerMOVW registers MOVW Rd+1:Rd, Rr+1:Rr: copies a register pair.
// d and r each name the low register of a pair advancing by 2 (R0:R1,
// R2:R3, ...).
// Encoding: 0000 0001 dddd rrrr
func registerMOVW() {
	registerInsn(&insn{
		mnemonic:   "MOVW",
		pattern:    compilePattern("0000_0001_dddd_rrrr"),
		varOffsets: map[byte]varOffset{'d': {mul: 2}, 'r': {mul: 2}},
		operation: func(ctx *stepCtx) {
			d, r := ctx.d(), ctx.r()
			ctx.m.R[d+1] = ctx.m.R[r+1]
		},
		writeback: func(ctx *stepCtx) {
			d, r := ctx.d(), ctx.r()
			ctx.m.R[d] = ctx.m.R[r]
		},
		pcPostInc: 1,
	})
}

// --- LDI ---

// registerLDI registers LDI Rd, K: load immediate, Rd in R16..R31.
// Encoding: 1110 KKKK dddd KKKK
func registerLDI() {
	registerInsn(&insn{
		mnemonic:   "LDI",
		pattern:    compilePattern("1110_KKKK_dddd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 0x10}},
		operation: func(ctx *stepCtx) {
			ctx.m.R[ctx.d()] = uint8(ctx.K())
		},
		pcPostInc: 1,
	})
}

// --- LD via X ---

func registerLD_X() {
	// LD_X_i: Rd := DATA[X]. Encoding: 1001 000d dddd 1100
	registerInsn(&insn{
		mnemonic: "LD_X_i",
		pattern:  compilePattern("1001_000d_dddd_1100"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.XAddr())
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
	// LD_X_ii: Rd := DATA[X]; X += 1. Encoding: 1001 000d dddd 1101
	registerInsn(&insn{
		mnemonic: "LD_X_ii",
		pattern:  compilePattern("1001_000d_dddd_1101"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.XAddr())
			ctx.m.R[ctx.d()] = v
		},
		writeback:func(ctx *stepCtx) { ctx.m.SetXAddr(ctx.m.XAddr() + 1) },
		pcPostInc: 1,
	})
	// LD_X_iii: X -= 1; Rd := DATA[X]. Encoding: 1001 000d dddd 1110
	registerInsn(&insn{
		mnemonic: "LD_X_iii",
		pattern:  compilePattern("1001_000d_dddd_1110"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetXAddr(ctx.m.XAddr() - 1)
		},
		writeback: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.XAddr())
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
}

// --- LD via Y ---

func registerLD_Y() {
	// LD_Y_i: Rd := DATA[Y]. Encoding: 1000 000d dddd 1000
	registerInsn(&insn{
		mnemonic: "LD_Y_i",
		pattern:  compilePattern("1000_000d_dddd_1000"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.YAddr())
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
	// LD_Y_ii: Rd := DATA[Y]; Y += 1. Encoding: 1001 000d dddd 1001
	registerInsn(&insn{
		mnemonic: "LD_Y_ii",
		pattern:  compilePattern("1001_000d_dddd_1001"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.YAddr())
			ctx.m.R[ctx.d()] = v
		},
		writeback: func(ctx *stepCtx) { ctx.m.SetYAddr(ctx.m.YAddr() + 1) },
		pcPostInc: 1,
	})
	// LD_Y_iii: Y -= 1; Rd := DATA[Y]. Encoding: 1001 000d dddd 1010
	registerInsn(&insn{
		mnemonic: "LD_Y_iii",
		pattern:  compilePattern("1001_000d_dddd_1010"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetYAddr(ctx.m.YAddr() - 1)
		},
		writeback: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.YAddr())
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
	// LD_Y_iv: Rd := DATA[Y+q], displacement form with scrambled q bits.
	// Encoding: 10q0 qq0d dddd 1qqq
	registerInsn(&insn{
		mnemonic: "LD_Y_iv",
		pattern:  compilePattern("10q0_qq0d_dddd_1qqq"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.YAddr() + uint16(ctx.q()))
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
}

// --- LD via Z ---

func registerLD_Z() {
	// LD_Z_i: Rd := DATA[Z]. Encoding: 1000 000d dddd 0000
	registerInsn(&insn{
		mnemonic: "LD_Z_i",
		pattern:  compilePattern("1000_000d_dddd_0000"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.ZAddr())
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
	// LD_Z_ii: Rd := DATA[Z]; Z += 1. Encoding: 1001 000d dddd 0001
	registerInsn(&insn{
		mnemonic: "LD_Z_ii",
		pattern:  compilePattern("1001_000d_dddd_0001"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.ZAddr())
			ctx.m.R[ctx.d()] = v
		},
		writeback: func(ctx *stepCtx) { ctx.m.SetZAddr(ctx.m.ZAddr() + 1) },
		pcPostInc: 1,
	})
	// LD_Z_iii: Z -= 1; Rd := DATA[Z]. Encoding: 1001 000d dddd 0010
	registerInsn(&insn{
		mnemonic: "LD_Z_iii",
		pattern:  compilePattern("1001_000d_dddd_0010"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetZAddr(ctx.m.ZAddr() - 1)
		},
		writeback: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.ZAddr())
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
	// LD_Z_iv: Rd := DATA[Z+q], displacement form with scrambled q bits.
	// Encoding: 10q0 qq0d dddd 0qqq
	registerInsn(&insn{
		mnemonic: "LD_Z_iv",
		pattern:  compilePattern("10q0_qq0d_dddd_0qqq"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(ctx.m.ZAddr() + uint16(ctx.q()))
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
}

// --- LDS ---

// registerLDS registers LDS Rd, k: Rd := DATA[k], a 16-bit absolute data
// address in the extension word. Two-word instruction.
// Encoding: 1001 000d dddd 0000 kkkk kkkk kkkk kkkk
func registerLDS() {
	registerInsn(&insn{
		mnemonic: "LDS",
		pattern:  compilePattern("1001_000d_dddd_0000_kkkk_kkkk_kkkk_kkkk"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetDataMem(uint16(ctx.k()))
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 2,
	})
}

// --- LPM ---

func registerLPM() {
	// LPM_i: R0 := PROG byte at Z. Encoding: 1001 0101 1100 1000
	registerInsn(&insn{
		mnemonic: "LPM_i",
		pattern:  compilePattern("1001_0101_1100_1000"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetProgMemByte(ctx.m.ZAddr())
			ctx.m.R[0] = v
		},
		pcPostInc: 1,
	})
	// LPM_ii: Rd := PROG byte at Z, no post-increment. Encoding: 1001 000d dddd 0100
	registerInsn(&insn{
		mnemonic: "LPM_ii",
		pattern:  compilePattern("1001_000d_dddd_0100"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetProgMemByte(ctx.m.ZAddr())
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
	// LPM_iii: Rd := PROG byte at Z; Z += 1. Encoding: 1001 000d dddd 0101
	registerInsn(&insn{
		mnemonic: "LPM_iii",
		pattern:  compilePattern("1001_000d_dddd_0101"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.GetProgMemByte(ctx.m.ZAddr())
			ctx.m.R[ctx.d()] = v
		},
		writeback: func(ctx *stepCtx) { ctx.m.SetZAddr(ctx.m.ZAddr() + 1) },
		pcPostInc: 1,
	})
}

// --- POP / PUSH ---

// registerPOP registers POP Rd: pops one byte off the stack into Rd.
// Encoding: 1001 000d dddd 1111
func registerPOP() {
	registerInsn(&insn{
		mnemonic: "POP",
		pattern:  compilePattern("1001_000d_dddd_1111"),
		operation: func(ctx *stepCtx) {
			v, _ := ctx.m.PopStack8()
			ctx.m.R[ctx.d()] = v
		},
		pcPostInc: 1,
	})
}

// registerPUSH registers PUSH Rd: pushes Rd onto the stack.
// Encoding: 1001 001d dddd 1111
func registerPUSH() {
	registerInsn(&insn{
		mnemonic: "PUSH",
		pattern:  compilePattern("1001_001d_dddd_1111"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.m.PushStack8(uint8(ctx.Rd()))
		},
		pcPostInc: 1,
	})
}

// --- ST via X ---

func registerST_X() {
	// ST_X_i: DATA[X] := Rr. Encoding: 1001 001r rrrr 1100
	registerInsn(&insn{
		mnemonic: "ST_X_i",
		pattern:  compilePattern("1001_001r_rrrr_1100"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.XAddr(), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
	// ST_X_ii: DATA[X] := Rr; X += 1. Encoding: 1001 001r rrrr 1101
	registerInsn(&insn{
		mnemonic: "ST_X_ii",
		pattern:  compilePattern("1001_001r_rrrr_1101"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.XAddr(), ctx.m.R[ctx.r()])
		},
		writeback: func(ctx *stepCtx) { ctx.m.SetXAddr(ctx.m.XAddr() + 1) },
		pcPostInc: 1,
	})
	// ST_X_iii: X -= 1; DATA[X] := Rr. Encoding: 1001 001r rrrr 1110
	registerInsn(&insn{
		mnemonic: "ST_X_iii",
		pattern:  compilePattern("1001_001r_rrrr_1110"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetXAddr(ctx.m.XAddr() - 1)
		},
		writeback: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.XAddr(), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
}

// --- ST via Y ---

func registerST_Y() {
	// ST_Y_i: DATA[Y] := Rr. Encoding: 1000 001r rrrr 1000
	registerInsn(&insn{
		mnemonic: "ST_Y_i",
		pattern:  compilePattern("1000_001r_rrrr_1000"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.YAddr(), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
	// ST_Y_ii: DATA[Y] := Rr; Y += 1. Encoding: 1001 001r rrrr 1001
	registerInsn(&insn{
		mnemonic: "ST_Y_ii",
		pattern:  compilePattern("1001_001r_rrrr_1001"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.YAddr(), ctx.m.R[ctx.r()])
		},
		writeback: func(ctx *stepCtx) { ctx.m.SetYAddr(ctx.m.YAddr() + 1) },
		pcPostInc: 1,
	})
	// ST_Y_iii: Y -= 1; DATA[Y] := Rr. Encoding: 1001 001r rrrr 1010
	registerInsn(&insn{
		mnemonic: "ST_Y_iii",
		pattern:  compilePattern("1001_001r_rrrr_1010"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetYAddr(ctx.m.YAddr() - 1)
		},
		writeback: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.YAddr(), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
	// ST_Y_iv: DATA[Y+q] := Rr, displacement form. Encoding: 10q0 qq1r rrrr 1qqq
	registerInsn(&insn{
		mnemonic: "ST_Y_iv",
		pattern:  compilePattern("10q0_qq1r_rrrr_1qqq"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.YAddr()+uint16(ctx.q()), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
}

// --- ST via Z ---

func registerST_Z() {
	// ST_Z_i: DATA[Z] := Rr. Encoding: 1000 001r rrrr 0000
	registerInsn(&insn{
		mnemonic: "ST_Z_i",
		pattern:  compilePattern("1000_001r_rrrr_0000"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.ZAddr(), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
	// ST_Z_ii: DATA[Z] := Rr; Z += 1. Encoding: 1001 001r rrrr 0001
	registerInsn(&insn{
		mnemonic: "ST_Z_ii",
		pattern:  compilePattern("1001_001r_rrrr_0001"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.ZAddr(), ctx.m.R[ctx.r()])
		},
		writeback: func(ctx *stepCtx) { ctx.m.SetZAddr(ctx.m.ZAddr() + 1) },
		pcPostInc: 1,
	})
	// ST_Z_iii: Z -= 1; DATA[Z] := Rr. Encoding: 1001 001r rrrr 0010
	registerInsn(&insn{
		mnemonic: "ST_Z_iii",
		pattern:  compilePattern("1001_001r_rrrr_0010"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetZAddr(ctx.m.ZAddr() - 1)
		},
		writeback: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.ZAddr(), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
	// ST_Z_iv: DATA[Z+q] := Rr, displacement form. Encoding: 10q0 qq1r rrrr 0qqq
	registerInsn(&insn{
		mnemonic: "ST_Z_iv",
		pattern:  compilePattern("10q0_qq1r_rrrr_0qqq"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(ctx.m.ZAddr()+uint16(ctx.q()), ctx.m.R[ctx.r()])
		},
		pcPostInc: 1,
	})
}

// --- STS ---

// registerSTS registers STS k, Rr: DATA[k] := Rr, a 16-bit absolute data
// address in the extension word. Two-word instruction.
// Encoding: 1001 001r rrrr 0000 kkkk kkkk kkkk kkkk
func registerSTS() {
	registerInsn(&insn{
		mnemonic: "STS",
		pattern:  compilePattern("1001_001r_rrrr_0000_kkkk_kkkk_kkkk_kkkk"),
		operation: func(ctx *stepCtx) {
			ctx.m.SetDataMem(uint16(ctx.k()), ctx.m.R[ctx.r()])
		},
		pcPostInc: 2,
	})
}
