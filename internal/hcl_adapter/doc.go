// Package hcl_adapter provides the HCL implementation of the config.Loader
// interface. It parses material authoring files and `bxdf` manifests,
// folds constant literals into Values and turns `node.<name>[.<channel>]`
// traversals into references. Problems are reported as HCL diagnostics, so
// every error carries its source range.
package hcl_adapter
