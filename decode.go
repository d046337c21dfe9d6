package avr

// decoded is the result of fetching and decoding one instruction: the
// selected table entry, its extracted operand fields, and the word(s) it
// occupies. Produced by decodeAt for the execution engine and for halt-loop
// detection; Disassemble runs its own lookup over the same instruction table.
type decoded struct {
	insn  *insn
	ops   map[byte]uint32
	word1 uint16
	word2 uint16
}

// decodeAt fetches the instruction word at pc and selects its table entry,
// applying precondition-based disambiguation. It is a pure read: it never
// mutates m, and in particular never looks at or clears m.SKIP — that latch
// is the caller's concern (Step consumes it; isHaltLoop must not), so that
// a read-only decode (disassembly, halt-loop detection) can never silently
// advance the machine's skip state.
func decodeAt(m *Machine, pc uint16) (*decoded, error) {
	word1, err := m.GetProgMem(pc)
	if err != nil {
		return nil, err
	}

	bucket := findBucket(word1)
	if bucket == nil {
		return nil, undecodedInstructionError(word1, pc)
	}

	var word2 uint16
	var extOpcode uint32
	if bucket[0].wordCount() == 2 {
		word2, err = m.GetProgMem(pc + 1)
		if err != nil {
			return nil, err
		}
		extOpcode = (uint32(word1) << 16) | uint32(word2)
	} else {
		extOpcode = uint32(word1)
	}

	if len(bucket) == 1 {
		ins := bucket[0]
		return &decoded{
			insn:  ins,
			ops:   extractFields(extOpcode, ins.pattern, ins.varOffsets),
			word1: word1, word2: word2,
		}, nil
	}

	var fallback *insn
	var fallbackOps map[byte]uint32
	for _, cand := range bucket {
		ops := extractFields(extOpcode, cand.pattern, cand.varOffsets)
		if cand.precondition != nil {
			if cand.precondition(&stepCtx{m: m, ops: ops}) {
				return &decoded{insn: cand, ops: ops, word1: word1, word2: word2}, nil
			}
			continue
		}
		if fallback == nil {
			fallback, fallbackOps = cand, ops
		}
	}
	if fallback == nil {
		return nil, undecodedInstructionError(word1, pc)
	}
	return &decoded{insn: fallback, ops: fallbackOps, word1: word1, word2: word2}, nil
}

// isHaltLoop reports whether the instruction at pc is the canonical
// self-branch RJMP .-0 used by test programs to stop the run loop: an RJMP
// whose signed 12-bit offset is -1. A pending skip is never the halt loop —
// pc names the skip's victim, not the next instruction to actually run —
// and since decodeAt no longer consumes SKIP itself, that case must be
// rejected here before decoding it.
func isHaltLoop(m *Machine, pc uint16) bool {
	if m.SKIP {
		return false
	}
	d, err := decodeAt(m, pc)
	if err != nil {
		return false
	}
	if d.insn.mnemonic != "RJMP" {
		return false
	}
	return ToSigned(d.ops['k'], 12) == -1
}
