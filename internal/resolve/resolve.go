// Package resolve dereferences alias tokens against the document root.
//
// Resolution never fails: references that cannot be followed are reported as
// diagnostics and left in place so the emitters still produce an inspectable
// artifact.
package resolve

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/marcus/designtokens/internal/theme"
	"github.com/marcus/designtokens/internal/token"
)

// Context carries everything a resolution run needs. It is created per run
// and must not be shared between goroutines.
type Context struct {
	// Root is the document every reference is resolved against.
	Root *token.Group
	// Logger receives one warning per diagnostic. Nil uses slog.Default().
	Logger *slog.Logger
	// MaxDepth caps the number of alias hops. Zero means unbounded;
	// cycles are detected independently of this limit.
	MaxDepth int
	// MaxNodes caps the node count of the resolved tree, counting every
	// place a shared alias target is spliced in. Zero means DefaultMaxNodes.
	MaxNodes int

	diagnostics []Diagnostic
	cache       map[string]resolved
	nodes       int
	exhausted   bool
}

// DefaultMaxNodes bounds group aliases that fan out into each other.
const DefaultMaxNodes = 250000

// resolved is a dereferenced alias target kept for reuse.
type resolved struct {
	node token.Token
	size int // nodes spliced in per use
	hops int // alias hops taken below the reference
}

// NewContext returns a context resolving against root.
func NewContext(root *token.Group, logger *slog.Logger) *Context {
	return &Context{Root: root, Logger: logger}
}

func (c *Context) maxNodes() int {
	if c.MaxNodes > 0 {
		return c.MaxNodes
	}
	return DefaultMaxNodes
}

// Diagnostics returns the anomalies recorded so far.
func (c *Context) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Resolve returns a copy of tree with every reference replaced by the value
// it points to. The input tree is not modified.
func Resolve(ctx *Context, tree *token.Group) *token.Group {
	st := &chain{onStack: make(map[string]bool)}
	return ctx.resolveGroup(tree, nil, st)
}

// chain tracks the reference paths being followed on the current call stack.
// peak is the deepest stack length reached since it was last reset.
type chain struct {
	stack   []string
	onStack map[string]bool
	peak    int
}

func (s *chain) push(path string) {
	s.stack = append(s.stack, path)
	s.onStack[path] = true
	s.peak = max(s.peak, len(s.stack))
}

func (s *chain) pop() {
	last := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	delete(s.onStack, last)
}

func (c *Context) resolveNode(t token.Token, at []string, st *chain) token.Token {
	c.nodes++
	switch n := t.(type) {
	case *token.Group:
		return c.resolveGroup(n, at, st)
	case *token.List:
		out := &token.List{Items: make([]token.Token, len(n.Items))}
		for i, item := range n.Items {
			out.Items[i] = c.resolveNode(item, appendPath(at, strconv.Itoa(i)), st)
		}
		return out
	case *token.Literal:
		return c.resolveLiteral(n, at, st)
	case *token.Reference:
		return c.resolveReference(n, at, st)
	}
	return t
}

func (c *Context) resolveGroup(g *token.Group, at []string, st *chain) *token.Group {
	out := token.NewGroup()
	g.Each(func(key string, child token.Token) {
		out.Set(key, c.resolveNode(child, appendPath(at, key), st))
	})
	return out
}

// resolveLiteral follows a literal whose value is itself an alias string.
func (c *Context) resolveLiteral(lit *token.Literal, at []string, st *chain) token.Token {
	path, ok := token.ParseReference(lit.Value)
	if !ok {
		return lit
	}
	ref := &token.Reference{Path: path}
	switch n := c.resolveReference(ref, at, st).(type) {
	case *token.Literal:
		return lit.WithValue(n.Value, n.Kind)
	case *token.Reference:
		// already reported
		return lit
	default:
		c.report(KindUnresolved, at, ref, "reference points at a group, not a value")
		return lit
	}
}

func (c *Context) resolveReference(ref *token.Reference, at []string, st *chain) token.Token {
	if c.exhausted {
		c.report(KindDepthExceeded, at, ref, c.budgetDetail())
		return ref
	}
	if c.MaxDepth > 0 && len(st.stack) >= c.MaxDepth {
		c.report(KindDepthExceeded, at, ref, "alias chain is longer than the configured depth")
		return ref
	}

	target, canonical, ok := c.lookup(ref.Segments())
	if !ok {
		c.report(KindUnresolved, at, ref, "path does not exist")
		return ref
	}
	if st.onStack[canonical] {
		cycle := append(append([]string(nil), st.stack...), canonical)
		c.report(KindCircular, at, ref, "alias chain "+strings.Join(cycle, " -> "))
		return ref
	}

	// A target that resolved cleanly does not depend on the chain that
	// reached it, so it is shared as long as the hop cap still allows it.
	if hit, ok := c.cache[canonical]; ok && (c.MaxDepth == 0 || len(st.stack)+hit.hops <= c.MaxDepth) {
		c.nodes += hit.size
		if c.nodes > c.maxNodes() {
			c.exhausted = true
			c.report(KindDepthExceeded, at, ref, c.budgetDetail())
			return ref
		}
		return hit.node
	}

	diagnostics, nodes, base, outerPeak := len(c.diagnostics), c.nodes, len(st.stack), st.peak
	st.peak = 0
	st.push(canonical)
	out := c.resolveNode(target, at, st)
	st.pop()
	hops := st.peak - base
	st.peak = max(outerPeak, st.peak)

	if c.exhausted {
		return ref
	}
	if c.nodes > c.maxNodes() {
		c.exhausted = true
		c.report(KindDepthExceeded, at, ref, c.budgetDetail())
		return ref
	}

	if lit, ok := out.(*token.Literal); ok {
		out = &token.Literal{Value: lit.Value, Type: lit.Type, Kind: lit.Kind}
	}
	if len(c.diagnostics) == diagnostics {
		if c.cache == nil {
			c.cache = make(map[string]resolved)
		}
		c.cache[canonical] = resolved{node: out, size: c.nodes - nodes, hops: hops}
	}
	return out
}

func (c *Context) budgetDetail() string {
	return "alias expansion exceeds " + strconv.Itoa(c.maxNodes()) + " nodes"
}

// lookup walks segments from the root. When the first segment is not a
// top-level key it is retried against the base/ and theme/ scoped keys.
func (c *Context) lookup(segments []string) (token.Token, string, bool) {
	if t, ok := token.Walk(c.Root, segments); ok {
		return t, strings.Join(segments, "."), true
	}
	for _, key := range theme.Candidates(c.Root, segments[0]) {
		full := append([]string{key}, segments[1:]...)
		if t, ok := token.Walk(c.Root, full); ok {
			return t, strings.Join(full, "."), true
		}
	}
	return nil, "", false
}

func (c *Context) report(kind Kind, at []string, ref *token.Reference, detail string) {
	d := Diagnostic{
		Kind:      kind,
		Path:      strings.Join(at, "."),
		Reference: ref.String(),
		Detail:    detail,
	}
	c.diagnostics = append(c.diagnostics, d)

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn(d.Kind.Message(), "reference", d.Reference, "token", d.Path, "detail", d.Detail)
}

func appendPath(at []string, seg string) []string {
	out := make([]string, len(at), len(at)+1)
	copy(out, at)
	return append(out, seg)
}
