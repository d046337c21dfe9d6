package avr

import "strings"

// fieldSpec is one operand letter's bit positions within a compiled pattern,
// in order of first appearance (left to right in the pattern string), which
// is the letter's most-significant-first bit order for extraction.
type fieldSpec struct {
	positions []uint
}

// compiledPattern is an opcode template reduced to a mask/signature pair and
// a per-letter field map, computed once at init() time.
type compiledPattern struct {
	wordCount int // 1 for a 16-bit instruction, 2 for a 32-bit (two-word) one
	mask      uint32
	signature uint32
	fields    map[byte]fieldSpec
}

// compilePattern parses an opcode template such as "0001_11rd_dddd_rrrr"
// (underscores are decorative) into its mask, signature, and operand field
// layout. Pattern length must be 16 or 32 bits; 32-bit patterns describe a
// two-word instruction whose second word supplies the low 16 bits of the
// combined opcode value.
func compilePattern(pattern string) compiledPattern {
	bits := strings.ReplaceAll(pattern, "_", "")
	n := len(bits)
	wordCount := 1
	switch n {
	case 16:
		wordCount = 1
	case 32:
		wordCount = 2
	default:
		panic("avr: opcode pattern must be 16 or 32 bits: " + pattern)
	}

	var mask, sig uint32
	raw := map[byte][]uint{}
	for i := 0; i < n; i++ {
		c := bits[i]
		pos := uint(n - 1 - i)
		switch c {
		case '0':
			mask |= 1 << pos
		case '1':
			mask |= 1 << pos
			sig |= 1 << pos
		default:
			raw[c] = append(raw[c], pos)
		}
	}

	fields := make(map[byte]fieldSpec, len(raw))
	for letter, positions := range raw {
		fields[letter] = fieldSpec{positions: positions}
	}
	return compiledPattern{wordCount: wordCount, mask: mask, signature: sig, fields: fields}
}

// varOffset describes the (add, mul) transform applied to a raw extracted
// field: field = mul*raw + add. mul defaults to 1 when unset.
type varOffset struct {
	add uint32
	mul uint32
}

// extractFields pulls every operand letter out of opcode per cp's field
// layout and applies offs, returning one value per letter.
func extractFields(opcode uint32, cp compiledPattern, offs map[byte]varOffset) map[byte]uint32 {
	out := make(map[byte]uint32, len(cp.fields))
	for letter, spec := range cp.fields {
		raw := extractField(opcode, spec.positions)
		if off, ok := offs[letter]; ok {
			mul := off.mul
			if mul == 0 {
				mul = 1
			}
			raw = mul*raw + off.add
		}
		out[letter] = raw
	}
	return out
}
