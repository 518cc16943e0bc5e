package tokens

import (
	"fmt"
	"sync"
)

// Store is the frozen three-tier token collection. It is built once and is
// safe to share between goroutines because nothing mutates it afterwards.
type Store struct {
	Brand  Brand
	Alias  Alias
	Mapped Mapped

	root *Group
}

// Options controls store construction.
type Options struct {
	// Allowlist names Alias/Mapped values permitted to bypass Brand.
	// A nil Allowlist means DefaultAllowlist.
	Allowlist Allowlist
	// Strict ignores the allowlist so every literal override is reported.
	Strict bool
}

// New builds Brand, then Alias, then Mapped, and validates that every Alias
// and Mapped value traces back to Brand.
func New(opts Options) (*Store, error) {
	brand := NewBrand()

	alias, err := NewAlias(brand)
	if err != nil {
		return nil, fmt.Errorf("build alias tokens: %w", err)
	}

	mapped, err := NewMapped(alias)
	if err != nil {
		return nil, fmt.Errorf("build mapped tokens: %w", err)
	}

	allow := opts.Allowlist
	if allow == nil {
		allow = DefaultAllowlist()
	}
	if opts.Strict {
		allow = Allowlist{}
	}

	if err := Validate(brand, alias, mapped, allow); err != nil {
		return nil, err
	}

	return freeze(brand, alias, mapped), nil
}

func freeze(brand Brand, alias Alias, mapped Mapped) *Store {
	return &Store{
		Brand:  brand,
		Alias:  alias,
		Mapped: mapped,
		root: newGroup().
			set("brand", brand.group()).
			set("alias", alias.group()).
			set("mapped", mapped.group()),
	}
}

var defaultStore = sync.OnceValue(func() *Store {
	store, err := New(Options{})
	if err != nil {
		panic(fmt.Sprintf("tokens: built-in token tables are invalid: %v", err))
	}
	return store
})

// Default returns the process-wide store built from the built-in tables with
// DefaultAllowlist. It panics if those tables fail validation.
func Default() *Store {
	return defaultStore()
}

// Root returns the tree with top-level "brand", "alias" and "mapped" groups.
func (s *Store) Root() *Group {
	return s.root
}

// Token resolves a dotted path to a leaf token. Paths that stop at a group
// report false, as do paths that do not exist.
func (s *Store) Token(path string) (Token, bool) {
	node, ok := ResolveByDottedPath(s.root, path)
	if !ok {
		return Token{}, false
	}
	token, ok := node.(Token)
	return token, ok
}
