package avr

import (
	"math/bits"
	"sort"
	"sync"
)

// readSpec declares one register pre-load: before operation runs, the value
// at R[index] (or the 16-bit pair R[index+1]:R[index] when width is 16) is
// read into the step context, keyed by the same operand letter used to
// index it.
type readSpec struct {
	index byte
	width int
}

// stepCtx is the scratch state threaded through one instruction's decode and
// execution: the extracted operand fields, the pre-loaded register reads,
// the in-progress result, and the flag locals. Flag locals begin as the
// pre-instruction SREG bits and are overwritten in place, in the fixed
// evaluation order N, Z, C, H, V, S, so a later expression in that order
// (e.g. S = N^V) observes the freshly computed earlier flags rather than
// their pre-instruction values.
type stepCtx struct {
	m    *Machine
	ops  map[byte]uint32
	regs map[byte]uint32

	R uint32

	N, Z, C, V, S, H bool
}

func (c *stepCtx) Rd() uint32 { return c.regs['d'] }
func (c *stepCtx) Rr() uint32 { return c.regs['r'] }
func (c *stepCtx) K() uint32  { return c.ops['K'] }
func (c *stepCtx) d() uint32  { return c.ops['d'] }
func (c *stepCtx) r() uint32  { return c.ops['r'] }
func (c *stepCtx) k() uint32  { return c.ops['k'] }
func (c *stepCtx) s() uint32  { return c.ops['s'] }
func (c *stepCtx) b() uint32  { return c.ops['b'] }
func (c *stepCtx) A() uint32  { return c.ops['A'] }
func (c *stepCtx) q() uint32  { return c.ops['q'] }

// flagEvalContext builds the evalContext a flagExpr sees at the current
// point in flag evaluation: bit-addressable locals Rd, Rr, R, K, and the
// live flag booleans.
func (c *stepCtx) flagEvalContext() *evalContext {
	return &evalContext{
		bits: map[string]uint32{
			"Rd": c.Rd(),
			"Rr": c.Rr(),
			"R":  c.R,
			"K":  c.K(),
		},
		bools: map[string]bool{
			"N": c.N, "Z": c.Z, "C": c.C, "V": c.V, "S": c.S, "H": c.H,
		},
		resultZero: c.R&0xFFFF == 0,
	}
}

// insn is one declarative instruction-table entry: opcode pattern, operand
// reads, the operation and writeback closures, the six flag expressions,
// an optional precondition for disambiguating a shared opcode encoding, and
// the PC advance after execution.
type insn struct {
	mnemonic  string
	pattern   compiledPattern
	reads     []readSpec
	operation func(ctx *stepCtx)
	writeback func(ctx *stepCtx)

	flagN, flagZ, flagC, flagH, flagV, flagS *flagExpr

	precondition func(ctx *stepCtx) bool
	pcPostInc    int
	varOffsets   map[byte]varOffset
}

// wordCount reports whether the instruction occupies one or two program
// words.
func (i *insn) wordCount() int { return i.pattern.wordCount }

var insnTable []*insn

// registerInsn adds one instruction to the table. Called from each
// instruction family file's init(). Every insn literal must set pcPostInc
// explicitly: 1 for an ordinary one-word instruction and for the relative
// branches (BRBC, BRBS, RJMP, RCALL), whose offset is counted from the next
// word; 0 for one that sets PC to an absolute target itself (CALL, JMP,
// IJMP, RET); 2 for a two-word form that doesn't jump (LDS, STS).
func registerInsn(i *insn) {
	insnTable = append(insnTable, i)
}

type bucketKey struct{ mask, signature uint32 }

var (
	decodeBuckets map[bucketKey][]*insn
	// decodeOrder lists decodeBuckets' keys in a fixed, deterministic scan
	// order: most-fixed-bits-first (highest mask popcount), ties broken by
	// the mask's numeric value. Map iteration order is randomized per Go
	// process, so findBucket must never range over decodeBuckets directly —
	// if two buckets ever matched the same word, which one won would
	// otherwise be random instead of the spec's deterministic "first
	// matching bucket" rule.
	decodeOrder []bucketKey
	buildTable  sync.Once
)

// ensureDecodeTable builds the mask/signature dispatch buckets from
// insnTable exactly once, on first use, and validates that no two
// preconditionless instructions share a bucket. That validation failure is
// a static defect in the table (a programming error in an insn_*.go file,
// never a runtime condition), so it panics rather than returning an error.
func ensureDecodeTable() {
	buildTable.Do(func() {
		decodeBuckets = make(map[bucketKey][]*insn)
		for _, ins := range insnTable {
			key := bucketKey{ins.pattern.mask, ins.pattern.signature}
			if ins.precondition != nil {
				decodeBuckets[key] = append([]*insn{ins}, decodeBuckets[key]...)
			} else {
				decodeBuckets[key] = append(decodeBuckets[key], ins)
			}
		}
		for key, bucket := range decodeBuckets {
			var unconditional []string
			for _, ins := range bucket {
				if ins.precondition == nil {
					unconditional = append(unconditional, ins.mnemonic)
				}
			}
			if len(unconditional) > 1 {
				panic((&ambiguousDecodeError{mask: key.mask, signature: key.signature, mnemonics: unconditional}).Error())
			}
		}

		decodeOrder = make([]bucketKey, 0, len(decodeBuckets))
		for key := range decodeBuckets {
			decodeOrder = append(decodeOrder, key)
		}
		sort.Slice(decodeOrder, func(i, j int) bool {
			pi, pj := bits.OnesCount32(decodeOrder[i].mask), bits.OnesCount32(decodeOrder[j].mask)
			if pi != pj {
				return pi > pj
			}
			return decodeOrder[i].mask > decodeOrder[j].mask
		})
	})
}

// findBucket returns the decode bucket whose first word matches word1, or
// nil if none, scanning decodeOrder rather than ranging decodeBuckets so the
// result is reproducible regardless of Go's randomized map iteration order.
// A one-word pattern's mask/signature occupy bits 0..15 of the key and are
// tested directly against word1; a two-word pattern's occupy bits 16..31
// (the low 16 bits, belonging to the still-unfetched extension word, are
// always wildcards for every two-word instruction in this table), so word1
// is tested shifted up by 16.
func findBucket(word1 uint16) []*insn {
	ensureDecodeTable()
	for _, key := range decodeOrder {
		bucket := decodeBuckets[key]
		if len(bucket) == 0 {
			continue
		}
		var candidate uint32
		if bucket[0].wordCount() == 1 {
			candidate = uint32(word1)
		} else {
			candidate = uint32(word1) << 16
		}
		if candidate&key.mask == key.signature {
			return bucket
		}
	}
	return nil
}
