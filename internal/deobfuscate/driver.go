// Package deobfuscate is the driver: it sequences the individual passes
// in internal/passes over one parsed tree, in a fixed order where each
// pass consumes the artifacts its predecessors left behind, and re-emits
// source text via internal/jsgen. Everything outside this package is an
// implementation detail behind the single public operation, Deobfuscate.
package deobfuscate

import (
	"github.com/aledsdavies/deobfjs/internal/ast"
	"github.com/aledsdavies/deobfjs/internal/jserrors"
	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
	"github.com/aledsdavies/deobfjs/internal/passes"
	"github.com/aledsdavies/deobfjs/internal/scope"
	"github.com/aledsdavies/deobfjs/internal/state"
)

// Logger is the optional debug-trace sink a caller may supply (the
// standard library's *log.Logger has no Debugf, so cmd/deobfjs wraps it
// in a small adapter); it is threaded
// through DeobfuscateWithOptions like any other dependency, the same
// way a -debug flag gets plumbed down into an entrypoint.
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}

// Options configures the optional parts of a single Deobfuscate call.
// There is no persisted configuration: every field here is supplied
// fresh by the caller per invocation.
type Options struct {
	// Pretty enables pass 21 (variable renaming), off by default since
	// it changes names rather than just undoing obfuscation.
	Pretty bool
	// RenameStrategy selects pass 21's naming scheme when Pretty is set.
	RenameStrategy passes.RenameStrategy
	// Logger receives debug traces; nil is treated as a no-op sink.
	Logger Logger
}

// Deobfuscate is the single external-facing operation: parse, run every
// pass in pipeline order, regenerate source text. On parse failure it
// aborts with no partial output, returning the first parser error; every
// other failure mode is internal to a pass and never surfaces here —
// a pass either succeeds in rewriting or leaves the tree untouched.
func Deobfuscate(source string) (string, error) {
	return DeobfuscateWithOptions(source, Options{})
}

// DeobfuscateWithOptions is Deobfuscate with the optional pretty-rename
// pass and a debug logger available to the caller.
func DeobfuscateWithOptions(source string, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	logger.Debugf("parsing %d bytes of source", len(source))
	prog, err := jsparser.Parse(source)
	if err != nil {
		return "", jserrors.Wrap(jserrors.KindParseFailure, "failed to parse input", err)
	}

	_ = scope.Build(prog) // scope info is built once, before the first pass runs

	runPipeline(prog, logger, opts)

	out := jsgen.Generate(prog)
	return out, nil
}

// runPipeline executes every pass in pipeline order. Scope info is not
// rebuilt here: the only pass that queries lexical bindings (rename)
// builds its own scope.Table from the tree as it stands when it runs.
// The shared analysis state is created once, at the start of the
// string-decoding group, and threaded, unreset, through
// string_array_rotation -> decoder_inline -> string_array_inline, since
// those passes build on each other's output; no other pass takes it.
func runPipeline(prog *ast.Program, logger Logger, opts Options) {
	logger.Debugf("pass 0.5: IIFE unwrap")
	passes.IIFEUnwrap(prog)

	logger.Debugf("pass 1: control-flow unflatten")
	passes.Unflatten(prog)

	st := state.New()
	logger.Debugf("pass 2: string-array detection + rotation")
	passes.DetectStringArrays(prog, st)
	passes.RotateStringArrays(prog, st)

	logger.Debugf("pass 3: decoder detection + call inlining")
	passes.DetectDecoders(prog, st)
	passes.InlineDecoderCalls(prog, st)

	logger.Debugf("pass 4: string-array direct-index inlining")
	passes.InlineArrayIndex(prog, st)

	logger.Debugf("pass 5: dispatcher-object inlining")
	passes.InlineDispatcherObjects(prog)

	logger.Debugf("pass 6: call-proxy inlining")
	passes.InlineCallProxies(prog)

	logger.Debugf("pass 7: operator-proxy inlining")
	passes.InlineOperatorProxies(prog)

	logger.Debugf("pass 8: expression simplification")
	passes.SimplifyExpressions(prog)

	logger.Debugf("pass 9: constant folding")
	passes.FoldConstants(prog)

	logger.Debugf("pass 10: algebraic simplification")
	passes.SimplifyAlgebraic(prog)

	logger.Debugf("pass 11: strength reduction")
	passes.ReduceStrength(prog)

	logger.Debugf("pass 12: dead-code elimination")
	passes.EliminateDeadCode(prog)

	logger.Debugf("pass 13: dead-variable elimination")
	passes.EliminateDeadVariables(prog)

	logger.Debugf("pass 13.5: multi-var split")
	passes.SplitMultiVarDeclarations(prog)

	logger.Debugf("pass 14: function inlining")
	passes.InlineFunctions(prog)

	logger.Debugf("pass 15: array-access unpack, dynamic-property to dot")
	passes.LocalInline(prog)

	logger.Debugf("pass 16a: ternary simplify / ternary-to-if")
	passes.SimplifyTernary(prog)
	passes.TernaryToIf(prog)

	logger.Debugf("pass 16b: short-circuit-to-if")
	passes.ShortCircuitToIf(prog)

	logger.Debugf("pass 17: empty try-catch unwrap")
	passes.UnwrapEmptyTryCatch(prog)

	logger.Debugf("pass 18: Unicode mangling normalization")
	passes.NormalizeUnicode(prog)

	logger.Debugf("pass 19: literal normalization")
	passes.NormalizeLiterals(prog)

	logger.Debugf("pass 20: object-sparsing consolidation")
	passes.ConsolidateObjectSparsing(prog)

	if opts.Pretty {
		logger.Debugf("pass 21: variable renaming (pretty)")
		passes.RenameVariables(prog, opts.RenameStrategy)
	}
}
