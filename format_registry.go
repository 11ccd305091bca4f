package numlex

import (
	"strings"
	"sync"

	"github.com/zeebo/xxh3"
)

// formatRegistry is the name -> Format lookup spec.md §4.B's "~100 named
// predefined constants" and SPEC_FULL.md §8 component G describe. Keys are
// hashed with xxh3 rather than relying on Go's built-in map hashing,
// matching the pack's codedude-brc usage of xxh3 for hot lookup paths;
// the registry itself is a plain map keyed by the hash, built once.
type formatRegistry struct {
	mu      sync.RWMutex
	entries map[uint64]namedFormat
}

type namedFormat struct {
	name string
	f    Format
}

// registryOnce defers registry construction until first use: the named
// presets in format_presets.go are themselves populated by an init()
// function, and Go runs package-level var initializers before init()
// functions, so building the registry eagerly here would race the
// presets and see their zero values. sync.OnceValue sidesteps the
// ordering problem entirely.
var registryOnce = sync.OnceValue(newFormatRegistry)

func registry() *formatRegistry { return registryOnce() }

func newFormatRegistry() *formatRegistry {
	r := &formatRegistry{entries: make(map[uint64]namedFormat, 64)}
	for name, f := range builtinPresets() {
		r.register(name, f)
	}
	return r
}

func builtinPresets() map[string]Format {
	return map[string]Format{
		"rust_literal":      RustLiteral,
		"rust_string":       RustString,
		"rust_string_strict": RustStringStrict,
		"python_literal":    PythonLiteral,
		"python_string":     PythonString,
		"c_literal":         CLiteral,
		"c99_literal":       C99Literal,
		"cpp_literal":       CppLiteral,
		"java_literal":      JavaLiteral,
		"javascript_literal": JavaScriptLiteral,
		"javascript_string": JavaScriptString,
		"go_literal":        GoLiteral,
		"go_string":         GoString,
		"swift_literal":     SwiftLiteral,
		"kotlin_literal":    KotlinLiteral,
		"ruby_literal":      RubyLiteral,
		"php_literal":       PHPLiteral,
		"perl_literal":      PerlLiteral,
		"haskell_literal":   HaskellLiteral,
		"fsharp_literal":    FSharpLiteral,
		"fsharp_string":     FSharpString,
		"json":              JSON,
		"toml":              TOML,
		"yaml":              YAML,
		"xml":               XML,
		"sqlite":            SQLite,
		"postgresql":        PostgreSQL,
		"mysql":             MySQL,
		"mongodb":           MongoDB,
		"standard":          Standard(),
	}
}

func hashName(name string) uint64 {
	return xxh3.HashString(strings.ToLower(name))
}

func (r *formatRegistry) register(name string, f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[hashName(name)] = namedFormat{name: strings.ToLower(name), f: f}
}

func (r *formatRegistry) lookup(name string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[hashName(name)]
	if !ok || e.name != strings.ToLower(name) {
		return 0, false
	}
	return e.f, true
}

// LookupFormat resolves a preset by name (case-insensitive), as built in
// via format_presets.go or previously registered with RegisterFormat.
func LookupFormat(name string) (Format, bool) {
	return registry().lookup(name)
}

// RegisterFormat adds or overwrites a named format in the process-wide
// registry, letting cmd/numlex merge user-supplied presets loaded from a
// YAML config file alongside the built-ins.
func RegisterFormat(name string, f Format) {
	registry().register(name, f)
}
