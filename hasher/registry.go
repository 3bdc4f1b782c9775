package hasher

import (
	"slices"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-cryptokit/cryptoerr"
)

// canonical lists every name NewRegistry resolves. The "-64" names alias the
// 64-bit default of the non-digest variants.
//
//nolint:gochecknoglobals
var canonical = []struct {
	name string
	alg  Algorithm
}{
	{"djb", Djb},
	{"djb-32", Djb32},
	{"djb-64", Djb},
	{"pal", Pal},
	{"pal-32", Pal32},
	{"pal-64", Pal},
	{"xor", Xor},
	{"xor-32", Xor32},
	{"xor-64", Xor},
	{"md5", Md5},
	{"md5-32", Md5Fold32},
	{"md5-64", Md5Fold64},
	{"sha1", Sha1},
	{"sha1-32", Sha1Fold32},
	{"sha1-64", Sha1Fold64},
	{"sha256", Sha256},
	{"sha256-32", Sha256Fold32},
	{"sha256-64", Sha256Fold64},
	{"blake2b", Blake2b},
	{"blake3", Blake3},
	{"xxh3", Xxh3},
	{"xxh3-32", Xxh332},
	{"xxh3-64", Xxh3},
}

// Registry maps names to hash functions.
//
// A Registry is meant to be populated once at start-up and then shared; Register
// must not run concurrently with Lookup.
type Registry struct {
	functions map[string]Hasher
}

// NewEmptyRegistry returns a registry with no entries.
func NewEmptyRegistry() *Registry {
	return &Registry{
		functions: make(map[string]Hasher),
	}
}

// NewRegistry returns a registry holding every canonical name and alias.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for _, entry := range canonical {
		r.functions[entry.name] = Function{name: entry.name, alg: entry.alg}
	}

	return r
}

// Register adds h under name, replacing any previous entry.
func (r *Registry) Register(name string, h Hasher) error {
	switch {
	case name == "":
		return cryptoerr.InvalidArgument("name")
	case h == nil:
		return cryptoerr.InvalidArgument("hasher")
	}

	r.functions[name] = h

	return nil
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) option.Generic[Hasher] {
	h, ok := r.functions[name]
	if !ok {
		return option.None[Hasher]()
	}

	return option.Some(h)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// New resolves name against the canonical names without building a registry.
func New(name string) option.Generic[Hasher] {
	for _, entry := range canonical {
		if entry.name == name {
			return option.Some[Hasher](Function{name: entry.name, alg: entry.alg})
		}
	}

	return option.None[Hasher]()
}
