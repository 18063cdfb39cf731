// Package state holds the process-wide mutable analysis record the
// deobfuscation pipeline threads through its passes: a value owned by
// the driver and passed by exclusive reference into each pass. No
// package-level global tracks it.
package state

// StringArrayInfo is one entry of the string-array table: the contents
// of an all-string array literal bound to an obfuscator-style name, plus
// whether a later bootstrap call rotated it before first use. Detection
// checks only the declaration's shape, not how the array is used later.
type StringArrayInfo struct {
	Strings       []string
	Rotated       bool
	RotationCount int
}

// OffsetOp is the decoder index adjustment operator a wrapper function
// applies to its argument before indexing into a string array.
type OffsetOp int

const (
	OffsetNone OffsetOp = iota
	OffsetAdd
	OffsetSub
)

// DecoderInfo is one entry of the decoder table: a function whose body
// returns an index into a known string array, optionally after adding
// or subtracting a constant offset from its argument.
type DecoderInfo struct {
	ArrayName string
	Offset    int
	OffsetOp  OffsetOp
}

// Index applies the decoder's offset adjustment: n if OffsetNone,
// n-offset if OffsetSub, n+offset if OffsetAdd.
func (d DecoderInfo) Index(n int64) int64 {
	switch d.OffsetOp {
	case OffsetSub:
		return n - int64(d.Offset)
	case OffsetAdd:
		return n + int64(d.Offset)
	default:
		return n
	}
}

// DeobfuscateState is the shared analysis record built up across the
// string-decoding pass group and consulted by decoder-call and
// array-index inlining to resolve an access back to its literal value.
type DeobfuscateState struct {
	StringArrays map[string]*StringArrayInfo
	Decoders     map[string]*DecoderInfo
}

// New returns an empty state, as created by the driver once per run,
// before string-array detection.
func New() *DeobfuscateState {
	return &DeobfuscateState{
		StringArrays: make(map[string]*StringArrayInfo),
		Decoders:     make(map[string]*DecoderInfo),
	}
}

// Lookup resolves NAME[i] against a registered, possibly-rotated array,
// returning (value, ok). ok is false for out-of-range i, which callers
// must treat as "leave the access alone".
func (s *DeobfuscateState) Lookup(arrayName string, i int64) (string, bool) {
	info, ok := s.StringArrays[arrayName]
	if !ok || i < 0 || i >= int64(len(info.Strings)) {
		return "", false
	}
	return info.Strings[i], true
}

// Rotate performs "for k mod |S| iterations, move the first element to
// the end", returning the result as a new slice; strings is not modified.
func Rotate(strings []string, k int) []string {
	n := len(strings)
	if n == 0 {
		return strings
	}
	k = k % n
	if k < 0 {
		k += n
	}
	return append(append([]string{}, strings[k:]...), strings[:k]...)
}
