package avr

import "fmt"

// Disassemble decodes the instruction word at pc in m's flash and returns
// its mnemonic and a formatted operand string, without executing or
// mutating the machine. It does not call decodeAt: it runs its own bucket
// lookup and precondition check over the same instruction table.
func Disassemble(m *Machine, pc uint16) (mnemonic string, operands string, words int, err error) {
	word1, err := m.GetProgMem(pc)
	if err != nil {
		return "", "", 0, err
	}

	bucket := findBucket(word1)
	if bucket == nil {
		return "", "", 0, undecodedInstructionError(word1, pc)
	}

	ins := bucket[0]
	wc := ins.wordCount()

	var extOpcode uint32
	if wc == 2 {
		word2, err := m.GetProgMem(pc + 1)
		if err != nil {
			return "", "", 0, err
		}
		extOpcode = (uint32(word1) << 16) | uint32(word2)
	} else {
		extOpcode = uint32(word1)
	}

	if len(bucket) > 1 {
		for _, cand := range bucket {
			ops := extractFields(extOpcode, cand.pattern, cand.varOffsets)
			if cand.precondition != nil {
				if cand.precondition(&stepCtx{m: m, ops: ops}) {
					ins = cand
					break
				}
				continue
			}
			ins = cand
		}
	}

	ops := extractFields(extOpcode, ins.pattern, ins.varOffsets)
	return ins.mnemonic, formatOperands(ins, ops), wc, nil
}

// formatOperands renders the operand fields a decoded instruction exposes,
// in the conventional AVR assembler order (destination before source).
func formatOperands(ins *insn, ops map[byte]uint32) string {
	letters := []byte{'d', 'r', 'K', 'k', 'b', 's', 'A', 'q'}
	out := ""
	for _, l := range letters {
		v, ok := ops[l]
		if !ok {
			continue
		}
		if out != "" {
			out += ", "
		}
		switch l {
		case 'd', 'r':
			out += fmt.Sprintf("R%d", v)
		default:
			out += fmt.Sprintf("%d", v)
		}
	}
	return out
}
