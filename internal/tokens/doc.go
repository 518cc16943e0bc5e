// Package tokens provides the three-tier design-token store behind the button.
//
// # Tiers
//
//  1. Brand - primitives (raw colors, type scale, spacing, borders, radius)
//  2. Alias - semantic values copied from Brand (foreground.primary, body-regular)
//  3. Mapped - component-scoped values copied from Alias (input-field/foreground)
//
// Tiers are built in that order by New and frozen into a Store. The store is
// never mutated afterwards, so one instance can be shared by every renderer:
//
//	store := tokens.Default()
//	accent, ok := store.Token("alias.color.foreground.accent")
//
// # Lookups
//
// ResolveByPath and ResolveByDottedPath walk the tree returned by Store.Root.
// A miss is reported through the boolean result, never a panic.
//
// # Build outputs
//
// FlattenToVariables produces CSS custom properties and TailwindTheme produces
// the theme-extension object for the utility CSS framework. Both walk the
// collections in insertion order, so their output is byte-stable.
package tokens
