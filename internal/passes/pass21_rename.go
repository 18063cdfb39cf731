// Pass 21 is the optional, cosmetic variable-renaming pass: skipped by
// default, available through the driver's --pretty flag. Two naming
// strategies are supported: a sequential a, b, c, ... counter, and a
// stable hash-based name derived from golang.org/x/crypto/blake2b, used
// when the driver is configured for deterministic output independent of
// traversal order.
package passes

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/aledsdavies/deobfjs/internal/ast"
	"github.com/aledsdavies/deobfjs/internal/scope"
)

// RenameStrategy selects how pass 21 derives a replacement name for each
// local binding.
type RenameStrategy int

const (
	// Sequential assigns a, b, ..., z, aa, ab, ... in declaration
	// encounter order.
	Sequential RenameStrategy = iota
	// HashBased derives the name from blake2b.Sum256 of the original
	// binding name, truncated and base36-encoded, so the
	// same program renames identically across runs without depending on
	// a shared counter.
	HashBased
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RenameVariables renames every function-local and top-level binding
// introduced by a var/let/const declarator or a function declaration's
// parameter to a short name under strategy, updating every reference
// consistently. Parameters of function expressions and arrows, and catch
// parameters, are renamed only when they share a name with such a
// binding. This
// pass is purely cosmetic: it never changes scope structure, only
// spelling.
//
// The candidate name pool is seeded from a freshly rebuilt scope.Table so
// a generated name never collides with a binding already declared
// anywhere in the program (including ones this pass doesn't itself
// rename, such as a name with outstanding reads that already happens to
// look like "a" or "b").
func RenameVariables(prog *ast.Program, strategy RenameStrategy) {
	table := scope.Build(prog)
	remap := map[string]string{}
	used := map[string]bool{}
	seq := 0

	order := []string{}
	ast.VisitProgram(prog, ast.Visitor{Stmt: func(s ast.Statement) {
		switch n := s.(type) {
		case *ast.VarDeclaration:
			for _, d := range n.Declarators {
				for _, name := range ast.BindingNames(d.Id) {
					order = append(order, name)
				}
			}
		case *ast.FunctionDeclaration:
			for _, p := range n.Params {
				for _, name := range ast.BindingNames(p) {
					order = append(order, name)
				}
			}
		}
	}})

	collides := func(cand string) bool {
		return used[cand] || table.Declared(cand)
	}

	nextName := func(original string) string {
		if strategy == HashBased {
			return hashName(original, used, table)
		}
		for {
			cand := sequentialName(seq)
			seq++
			if !collides(cand) {
				return cand
			}
		}
	}

	for _, name := range order {
		if _, done := remap[name]; done {
			continue
		}
		repl := nextName(name)
		used[repl] = true
		remap[name] = repl
	}
	if len(remap) == 0 {
		return
	}

	applyRemap := func(name string) string {
		if repl, ok := remap[name]; ok {
			return repl
		}
		return name
	}

	ast.RewriteProgram(prog, func(s ast.Statement) ast.Statement {
		switch n := s.(type) {
		case *ast.FunctionDeclaration:
			if repl, ok := remap[n.Name]; ok {
				n.Name = repl
			}
			for _, p := range n.Params {
				ast.RenameBindingPattern(p, applyRemap)
			}
		case *ast.VarDeclaration:
			for _, d := range n.Declarators {
				ast.RenameBindingPattern(d.Id, applyRemap)
			}
		case *ast.TryStatement:
			if n.Handler != nil && n.Handler.Param != nil {
				ast.RenameBindingPattern(n.Handler.Param, applyRemap)
			}
		}
		return s
	}, func(e ast.Expression) ast.Expression {
		switch n := e.(type) {
		case *ast.Identifier:
			if repl, ok := remap[n.Name]; ok {
				n.Name = repl
			}
		case *ast.FunctionExpression:
			for _, p := range n.Params {
				ast.RenameBindingPattern(p, applyRemap)
			}
		case *ast.ArrowFunctionExpression:
			for _, p := range n.Params {
				ast.RenameBindingPattern(p, applyRemap)
			}
		}
		return e
	})
}

// sequentialName returns the n-th name in the a, b, ..., z, aa, ab, ...
// sequence the Sequential strategy produces.
func sequentialName(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if n < 26 {
		return string(letters[n])
	}
	return sequentialName(n/26-1) + string(letters[n%26])
}

// hashName derives a deterministic short name from original via
// blake2b.Sum256, truncated to 40 bits and base36-encoded, re-hashing
// with a counter suffix on collision (against both names already handed
// out this run and names already declared anywhere in the program).
func hashName(original string, used map[string]bool, table *scope.Table) string {
	for attempt := 0; ; attempt++ {
		input := original
		if attempt > 0 {
			input = original + "#" + sequentialName(attempt)
		}
		sum := blake2b.Sum256([]byte(input))
		v := binary.BigEndian.Uint64(sum[:8]) & 0xFF_FFFF_FFFF // 40 bits
		name := "v" + encodeBase36(v)
		if !used[name] && !table.Declared(name) {
			return name
		}
	}
}

func encodeBase36(v uint64) string {
	if v == 0 {
		return "0"
	}
	n := new(big.Int).SetUint64(v)
	base := big.NewInt(36)
	mod := new(big.Int)
	digits := []byte{}
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		digits = append([]byte{base36[mod.Int64()]}, digits...)
	}
	return string(digits)
}
