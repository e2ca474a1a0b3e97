// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package schema describes the shape of material node kinds: which named
// properties a kind exposes, what sort of socket each one is, and which
// default a property takes when the author leaves it out.
//
// Both the built-in operator kinds and the BXDF kinds registered by modules are
// described with the same NodeDef structure, so the loader and the validator
// can treat them uniformly.
package schema

import (
	"fmt"

	"github.com/specialistvlad/matgraph/internal/shading"
)

// Socket classifies what a property slot accepts.
type Socket int

const (
	// SocketColor accepts an RGB colour.
	SocketColor Socket = iota
	// SocketFloat accepts a scalar; only the first component is read.
	SocketFloat
	// SocketVector accepts an unbounded three component vector.
	SocketVector
	// SocketNormal accepts a direction, usually an encoded normal map sample.
	SocketNormal
	// SocketBXDF accepts either a numeric value or a BXDF-producing node. Only
	// the source slots of routing operators use it.
	SocketBXDF
)

// String returns the socket's name as used in diagnostics.
func (s Socket) String() string {
	switch s {
	case SocketColor:
		return "color"
	case SocketFloat:
		return "float"
	case SocketVector:
		return "vector"
	case SocketNormal:
		return "normal"
	case SocketBXDF:
		return "bxdf"
	default:
		return fmt.Sprintf("Socket(%d)", int(s))
	}
}

// PropertyDef describes one named input slot of a node kind.
type PropertyDef struct {
	Name        string
	Socket      Socket
	Description string
	// Default is applied when the author omits the property. A nil Default
	// makes the property required.
	Default *shading.Value
}

// Required reports whether the property has no default.
func (p PropertyDef) Required() bool {
	return p.Default == nil
}

// NodeDef describes a node kind and its ordered property table. The order is
// the order in which validation reports problems.
type NodeDef struct {
	Kind        string
	Description string
	Properties  []PropertyDef
}

// Property looks up a property by name and returns its slot index.
func (d *NodeDef) Property(name string) (int, bool) {
	for i, p := range d.Properties {
		if p.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Default is a small helper for building property tables.
func Default(v shading.Value) *shading.Value {
	return &v
}

// ParseSocket returns the socket named s, as spelled by String.
func ParseSocket(s string) (Socket, error) {
	for _, sock := range []Socket{SocketColor, SocketFloat, SocketVector, SocketNormal, SocketBXDF} {
		if sock.String() == s {
			return sock, nil
		}
	}
	return 0, fmt.Errorf("unknown socket %q", s)
}
