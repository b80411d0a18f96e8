package eip712

import (
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/wippyai/walletcore/abi"
	"github.com/wippyai/walletcore/keccak"
)

// EncodeType returns the canonical type string of def: its own segment
// followed by the segments of every struct it references, sorted by name.
//
//	Mail(Person from,Person to,string contents)Person(string name,address wallet)
func EncodeType(def *abi.StructDef) string {
	var b strings.Builder
	writeSegment(&b, def)

	deps := collectDeps(def, []*abi.StructDef{def})[1:]
	slices.SortFunc(deps, func(x, y *abi.StructDef) int {
		return strings.Compare(x.Name, y.Name)
	})
	for _, dep := range deps {
		writeSegment(&b, dep)
	}
	return b.String()
}

// TypeHash returns keccak256(EncodeType(def)).
func TypeHash(def *abi.StructDef) common.Hash {
	return keccak.Sum256([]byte(EncodeType(def)))
}

func writeSegment(b *strings.Builder, def *abi.StructDef) {
	b.WriteString(def.Name)
	b.WriteByte('(')
	for i, f := range def.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Type.String())
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}
	b.WriteByte(')')
}

// collectDeps appends to emitted every struct reachable from the fields of
// def that emitted does not already hold, depth-first, and returns the
// extended list. Recursive definitions stop at names already emitted.
func collectDeps(def *abi.StructDef, emitted []*abi.StructDef) []*abi.StructDef {
	for _, f := range def.Fields {
		ref := baseStruct(f.Type)
		if ref == nil || slices.ContainsFunc(emitted, func(d *abi.StructDef) bool { return d.Name == ref.Name }) {
			continue
		}
		emitted = append(emitted, ref)
		emitted = collectDeps(ref, emitted)
	}
	return emitted
}

// baseStruct strips array dimensions and returns the struct underneath.
func baseStruct(t *abi.Type) *abi.StructDef {
	for t.Kind == abi.KindArray || t.Kind == abi.KindFixedArray {
		t = t.Elem
	}
	if t.Kind == abi.KindStruct {
		return t.Struct
	}
	return nil
}
