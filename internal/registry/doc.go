// Package registry provides the central "glue" for the BXDF module system.
//
// Built-in operator kinds (add, lerp, multiply and friends) are closed and
// live in the material package. The terminal BXDF kinds are open: each one is
// contributed either by a compiled Go module implementing Module, or by a
// `bxdf` manifest block in an authoring file. The Registry stores both under
// their kind name so the builder can resolve `node "<kind>" "<name>"` blocks.
//
// During application startup the registry is populated and then validated,
// so a broken property table is reported once instead of in every material
// that uses it.
package registry
