// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stats

import "github.com/corvidlabs/ccl/cerrs"

// Registry maps external, possibly-sparse property identifiers to the
// dense local codes used inside Row. The codes for Learn/Block/In/Out
// are a closed enumeration known up front; Registry exists only so a
// caller can register an additional property name and receive a stable
// dense code back, rather than auto-registering on first unknown use.
// Registration is explicit; an unregistered name is always an error.
type Registry struct {
	names map[string]Property
	next  Property
}

// NewRegistry returns a registry pre-seeded with the four built-in
// properties.
func NewRegistry() *Registry {
	r := &Registry{
		names: map[string]Property{
			"Learn": Learn,
			"Block": Block,
			"In":    In,
			"Out":   Out,
		},
		next: numProperties,
	}
	return r
}

// Register adds a new property name, returning its stable dense code.
// Registering an already-known name returns its existing code.
func (r *Registry) Register(name string) Property {
	if p, ok := r.names[name]; ok {
		return p
	}
	p := r.next
	r.names[name] = p
	r.next++
	return p
}

// Lookup resolves a property name to its dense code. Unknown names fail
// rather than auto-registering, keeping the property enumeration closed.
func (r *Registry) Lookup(name string) (Property, error) {
	p, ok := r.names[name]
	if !ok {
		return 0, cerrs.ErrUnknownProperty
	}
	return p, nil
}
