package avr

func init() {
	registerADC()
	registerADD()
	registerADIW()
	registerASR()
	registerCOM()
	registerCP()
	registerCPC()
	registerCPI()
	registerDEC()
	registerINC()
	registerMUL()
	registerNEG()
	registerSBC()
	registerSBCI()
	registerSBIW()
	registerSUB()
	registerSUBI()
}

// --- ADC ---

// registerADC registers ADC Rd, Rr: Rd = Rd + Rr + C.
// Encoding: 0001 11rd dddd rrrr
func registerADC() {
	registerInsn(&insn{
		mnemonic: "ADC",
		pattern:  compilePattern("0001_11rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			c := uint32(0)
			if ctx.C {
				c = 1
			}
			ctx.R = (ctx.Rd() + ctx.Rr() + c) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("Rd3 & Rr3 | Rr3 & !R3 | !R3 & Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & Rr7 & !R7 | !Rd7 & !Rr7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("Rd7 & Rr7 | Rr7 & !R7 | !R7 & Rd7"),
		pcPostInc: 1,
	})
}

// --- ADD ---

// registerADD registers ADD Rd, Rr: Rd = Rd + Rr. Shares its encoding with
// LSL (ADD Rd, Rd); LSL is registered separately with precondition r==d and
// takes priority when it holds.
// Encoding: 0000 11rd dddd rrrr
func registerADD() {
	registerInsn(&insn{
		mnemonic: "ADD",
		pattern:  compilePattern("0000_11rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() + ctx.Rr()) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("Rd3 & Rr3 | Rr3 & !R3 | !R3 & Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & Rr7 & !R7 | !Rd7 & !Rr7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("Rd7 & Rr7 | Rr7 & !R7 | !R7 & Rd7"),
		pcPostInc: 1,
	})
}

// --- ADIW ---

// registerADIW registers ADIW Rd+1:Rd, K: the 16-bit pair at d += K, d in
// {24,26,28,30}.
// Encoding: 1001 0110 KKdd KKKK
func registerADIW() {
	registerInsn(&insn{
		mnemonic:   "ADIW",
		pattern:    compilePattern("1001_0110_KKdd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 24, mul: 2}},
		reads:      []readSpec{{'d', 16}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() + ctx.K()) & 0xFFFF
		},
		writeback: func(ctx *stepCtx) {
			d := ctx.d()
			Set16(&ctx.m.R[d+1], &ctx.m.R[d], uint16(ctx.R))
		},
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("R15 & !Rd15"),
		flagN:     parseFlagExpr("R15"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("!R15 & Rd15"),
		pcPostInc: 1,
	})
}

// --- ASR ---

// registerASR registers ASR Rd: arithmetic shift right, sign bit held.
// Encoding: 1001 010d dddd 0101
func registerASR() {
	registerInsn(&insn{
		mnemonic: "ASR",
		pattern:  compilePattern("1001_010d_dddd_0101"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			rd := uint8(ctx.Rd())
			ctx.R = uint32((rd >> 1) | (rd & 0x80))
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

// --- COM ---

// registerCOM registers COM Rd: one's complement, Rd = 0xFF - Rd.
// Encoding: 1001 010d dddd 0000
func registerCOM() {
	registerInsn(&insn{
		mnemonic: "COM",
		pattern:  compilePattern("1001_010d_dddd_0000"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = uint32(0xFF - uint8(ctx.Rd()))
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("1"),
		pcPostInc: 1,
	})
}

// --- CP ---

// registerCP registers CP Rd, Rr: compares by subtraction, no writeback.
// Encoding: 0001 01rd dddd rrrr
func registerCP() {
	registerInsn(&insn{
		mnemonic: "CP",
		pattern:  compilePattern("0001_01rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() - ctx.Rr()) & 0xFF
		},
		flagH:     parseFlagExpr("!Rd3 & Rr3 | Rr3 & R3 | R3 & !Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & !Rr7 & !R7 | !Rd7 & Rr7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("!Rd7 & Rr7 | Rr7 & R7 | R7 & !Rd7"),
		pcPostInc: 1,
	})
}

// --- CPC ---

// registerCPC registers CPC Rd, Rr: compare with carry, no writeback. Z is
// cleared only if the result is nonzero; a zero result preserves the
// incoming Z so a multi-byte compare chain can detect "all bytes equal".
// Encoding: 0000 01rd dddd rrrr
func registerCPC() {
	registerInsn(&insn{
		mnemonic: "CPC",
		pattern:  compilePattern("0000_01rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			c := uint32(0)
			if ctx.C {
				c = 1
			}
			ctx.R = (ctx.Rd() - ctx.Rr() - c) & 0xFF
		},
		flagH:     parseFlagExpr("!Rd3 & Rr3 | Rr3 & R3 | R3 & !Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & !Rr7 & !R7 | !Rd7 & Rr7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_ & Z"),
		flagC:     parseFlagExpr("!Rd7 & Rr7 | Rr7 & R7 | R7 & !Rd7"),
		pcPostInc: 1,
	})
}

// --- CPI ---

// registerCPI registers CPI Rd, K: compare immediate, Rd in R16..R31.
// Encoding: 0011 KKKK dddd KKKK
func registerCPI() {
	registerInsn(&insn{
		mnemonic:   "CPI",
		pattern:    compilePattern("0011_KKKK_dddd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 0x10}},
		reads:      []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() - ctx.K()) & 0xFF
		},
		flagH:     parseFlagExpr("!Rd3 & K3 | K3 & R3 | R3 & !Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & !K7 & !R7 | !Rd7 & K7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("!Rd7 & K7 | K7 & R7 | R7 & !Rd7"),
		pcPostInc: 1,
	})
}

// --- DEC ---

// registerDEC registers DEC Rd: Rd -= 1. No carry flag (unlike SUBI 1).
// Encoding: 1001 010d dddd 1010
func registerDEC() {
	registerInsn(&insn{
		mnemonic: "DEC",
		pattern:  compilePattern("1001_010d_dddd_1010"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() - 1) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("!R7 & R6 & R5 & R4 & R3 & R2 & R1 & R0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		pcPostInc: 1,
	})
}

// --- INC ---

// registerINC registers INC Rd: Rd += 1.
// Encoding: 1001 010d dddd 0011
func registerINC() {
	registerInsn(&insn{
		mnemonic: "INC",
		pattern:  compilePattern("1001_010d_dddd_0011"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() + 1) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("R7 & !R6 & !R5 & !R4 & !R3 & !R2 & !R1 & !R0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		pcPostInc: 1,
	})
}

// --- MUL ---

// registerMUL registers MUL Rd, Rr: unsigned 8x8 multiply, result in R1:R0.
// Encoding: 1001 11rd dddd rrrr
func registerMUL() {
	registerInsn(&insn{
		mnemonic: "MUL",
		pattern:  compilePattern("1001_11rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() * ctx.Rr()) & 0xFFFF
		},
		writeback: func(ctx *stepCtx) { Set16(&ctx.m.R[1], &ctx.m.R[0], uint16(ctx.R)) },
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("R15"),
		pcPostInc: 1,
	})
}

// --- NEG ---

// registerNEG registers NEG Rd: two's complement, Rd = 0x00 - Rd. Carry and
// half-carry follow the AVR ISA manual's documented forms (C = R != 0,
// H = R3 | Rd3) rather than the literal "R ^ 0x00" text some versions of
// the source carry.
// Encoding: 1001 010d dddd 0001
func registerNEG() {
	registerInsn(&insn{
		mnemonic: "NEG",
		pattern:  compilePattern("1001_010d_dddd_0001"),
		reads:    []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (0x100 - ctx.Rd()) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("R3 | Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("R7 & !R6 & !R5 & !R4 & !R3 & !R2 & !R1 & !R0"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("!_"),
		pcPostInc: 1,
	})
}

// --- SBC ---

// registerSBC registers SBC Rd, Rr: Rd = Rd - Rr - C. Z is preserved on a
// zero result, the same chained-compare convention as CPC.
// Encoding: 0000 10rd dddd rrrr
func registerSBC() {
	registerInsn(&insn{
		mnemonic: "SBC",
		pattern:  compilePattern("0000_10rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			c := uint32(0)
			if ctx.C {
				c = 1
			}
			ctx.R = (ctx.Rd() - ctx.Rr() - c) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("!Rd3 & Rr3 | Rr3 & R3 | R3 & !Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & !Rr7 & !R7 | !Rd7 & Rr7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_ & Z"),
		flagC:     parseFlagExpr("!Rd7 & Rr7 | Rr7 & R7 | R7 & !Rd7"),
		pcPostInc: 1,
	})
}

// --- SBCI ---

// registerSBCI registers SBCI Rd, K: subtract immediate with carry.
// Encoding: 0100 KKKK dddd KKKK
func registerSBCI() {
	registerInsn(&insn{
		mnemonic:   "SBCI",
		pattern:    compilePattern("0100_KKKK_dddd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 0x10}},
		reads:      []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			c := uint32(0)
			if ctx.C {
				c = 1
			}
			ctx.R = (ctx.Rd() - ctx.K() - c) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("!Rd3 & K3 | K3 & R3 | R3 & !Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & !K7 & !R7 | !Rd7 & K7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_ & Z"),
		flagC:     parseFlagExpr("!Rd7 & K7 | K7 & R7 | R7 & !Rd7"),
		pcPostInc: 1,
	})
}

// --- SBIW ---

// registerSBIW registers SBIW Rd+1:Rd, K: 16-bit pair at d -= K.
// Encoding: 1001 0111 KKdd KKKK
func registerSBIW() {
	registerInsn(&insn{
		mnemonic:   "SBIW",
		pattern:    compilePattern("1001_0111_KKdd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 24, mul: 2}},
		reads:      []readSpec{{'d', 16}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() - ctx.K()) & 0xFFFF
		},
		writeback: func(ctx *stepCtx) {
			d := ctx.d()
			Set16(&ctx.m.R[d+1], &ctx.m.R[d], uint16(ctx.R))
		},
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("!R15 & Rd15"),
		flagN:     parseFlagExpr("R15"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("R15 & !Rd15"),
		pcPostInc: 1,
	})
}

// --- SUB ---

// registerSUB registers SUB Rd, Rr: Rd = Rd - Rr.
// Encoding: 0001 10rd dddd rrrr
func registerSUB() {
	registerInsn(&insn{
		mnemonic: "SUB",
		pattern:  compilePattern("0001_10rd_dddd_rrrr"),
		reads:    []readSpec{{'d', 8}, {'r', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() - ctx.Rr()) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("!Rd3 & Rr3 | Rr3 & R3 | R3 & !Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & !Rr7 & !R7 | !Rd7 & Rr7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("!Rd7 & Rr7 | Rr7 & R7 | R7 & !Rd7"),
		pcPostInc: 1,
	})
}

// --- SUBI ---

// registerSUBI registers SUBI Rd, K: subtract immediate.
// Encoding: 0101 KKKK dddd KKKK
func registerSUBI() {
	registerInsn(&insn{
		mnemonic:   "SUBI",
		pattern:    compilePattern("0101_KKKK_dddd_KKKK"),
		varOffsets: map[byte]varOffset{'d': {add: 0x10}},
		reads:      []readSpec{{'d', 8}},
		operation: func(ctx *stepCtx) {
			ctx.R = (ctx.Rd() - ctx.K()) & 0xFF
		},
		writeback: func(ctx *stepCtx) { ctx.m.R[ctx.d()] = uint8(ctx.R) },
		flagH:     parseFlagExpr("!Rd3 & K3 | K3 & R3 | R3 & !Rd3"),
		flagS:     parseFlagExpr("N ^ V"),
		flagV:     parseFlagExpr("Rd7 & !K7 & !R7 | !Rd7 & K7 & R7"),
		flagN:     parseFlagExpr("R7"),
		flagZ:     parseFlagExpr("_"),
		flagC:     parseFlagExpr("!Rd7 & K7 | K7 & R7 | R7 & !Rd7"),
		pcPostInc: 1,
	})
}
