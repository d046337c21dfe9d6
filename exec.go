package avr

// Step fetches, decodes, and executes exactly one instruction at the
// machine's current PC, following the fixed order from the execution
// engine design: extract operands, pre-load register reads, snapshot flag
// locals, run the operation, evaluate flags in order N, Z, C, H, V, S,
// apply writeback, commit flags to SREG, then advance PC.
func Step(m *Machine) error {
	pc := m.GetPC()
	d, err := decodeAt(m, pc)
	if err != nil {
		return err
	}

	if m.SKIP {
		m.SKIP = false
		m.SetPC(pc + uint16(d.insn.wordCount()))
		return nil
	}

	ins := d.insn
	ctx := &stepCtx{m: m, ops: d.ops, regs: make(map[byte]uint32, len(ins.reads))}

	for _, rs := range ins.reads {
		idx := ctx.ops[rs.index]
		if rs.width == 8 {
			ctx.regs[rs.index] = uint32(m.R[idx])
		} else {
			ctx.regs[rs.index] = uint32(Get16(m.R[idx+1], m.R[idx]))
		}
	}

	ctx.N = m.GetStatusFlag(FlagN)
	ctx.Z = m.GetStatusFlag(FlagZ)
	ctx.C = m.GetStatusFlag(FlagC)
	ctx.V = m.GetStatusFlag(FlagV)
	ctx.S = m.GetStatusFlag(FlagS)
	ctx.H = m.GetStatusFlag(FlagH)

	ins.operation(ctx)

	if ins.flagN != nil {
		ctx.N = ins.flagN.eval(ctx.flagEvalContext())
	}
	if ins.flagZ != nil {
		ctx.Z = ins.flagZ.eval(ctx.flagEvalContext())
	}
	if ins.flagC != nil {
		ctx.C = ins.flagC.eval(ctx.flagEvalContext())
	}
	if ins.flagH != nil {
		ctx.H = ins.flagH.eval(ctx.flagEvalContext())
	}
	if ins.flagV != nil {
		ctx.V = ins.flagV.eval(ctx.flagEvalContext())
	}
	if ins.flagS != nil {
		ctx.S = ins.flagS.eval(ctx.flagEvalContext())
	}

	if ins.writeback != nil {
		ins.writeback(ctx)
	}

	m.SREG[FlagN] = ctx.N
	m.SREG[FlagZ] = ctx.Z
	m.SREG[FlagC] = ctx.C
	m.SREG[FlagH] = ctx.H
	m.SREG[FlagV] = ctx.V
	m.SREG[FlagS] = ctx.S

	m.SetPC(m.GetPC() + uint16(ins.pcPostInc))
	return nil
}
