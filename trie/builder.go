// SPDX-License-Identifier: MIT
package trie

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Builder holds a [Trie] under construction.
	//
	// Insert is only valid until Build is called.
	Builder[V Constraint] struct {
		trie  *Trie[V]
		built bool
	}

	// Entry defines an interface for entities that can be inserted into a Trie.
	Entry[V Constraint] interface {
		// Key obtains the key stored by the Entry.
		Key() string
		// Value obtains the value stored by the Entry.
		Value() V
	}

	// DefaultEntry is a sample Entry interface implementation.
	DefaultEntry[V Constraint] struct {
		key   string
		value V
	}

	// BuildSource is a wrapper type for []Entry used to generate the Trie.
	BuildSource[V Constraint] struct {
		cfg  *Config
		list []Entry[V]
	}

	// BuildOption defines the BuildSource functional option type.
	BuildOption[V Constraint] func(*BuildSource[V])
)

// Trie building errors.
var (
	ErrBuildTrie    = errors.New("failed to build trie")
	ErrEmptyTrieSrc = errors.New("empty trie source")

	ErrPanicked = errors.New("recovery from panic")
)

// NewBuilder instantiates a [Builder] holding an empty root.
func NewBuilder[V Constraint](options ...Option[V]) *Builder[V] {
	b := &Builder[V]{trie: &Trie[V]{cfg: defConfig, root: newNode[V](), nodes: 1}}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// WithConfig configures the [Trie] [Config].
func WithConfig[V Constraint](cfg *Config) Option[V] {
	return func(b *Builder[V]) { b.trie.cfg = cfg }
}

// Insert registers key with value, overwriting the value of an existing key.
func (b *Builder[V]) Insert(key string, value V) (err error) {
	if b.built {
		return fmt.Errorf("insert (%s): %w", key, ErrBuilt)
	}
	if key == "" {
		return ErrEmptyKey
	}

	current := b.trie.root
	for index := 0; index < len(key); index++ {
		edge := key[index]

		next, ok := current.children[edge]
		if !ok {
			next = newNode[V]()
			current.children[edge] = next
			b.trie.nodes++
		}
		current = next
	}

	if !current.terminal {
		b.trie.keys++
	}
	current.value, current.terminal = value, true

	if b.trie.cfg.Debug {
		b.trie.cfg.Logger.Debugf("inserted (%s)=%v, nodes: %d", key, value, b.trie.nodes)
	}

	return
}

// Build hands over the constructed [Trie]; the Builder rejects further inserts.
func (b *Builder[V]) Build() *Trie[V] {
	b.built = true
	return b.trie
}

// NewEntry instantiates a [DefaultEntry].
func NewEntry[V Constraint](key string, value V) *DefaultEntry[V] {
	return &DefaultEntry[V]{key: key, value: value}
}

// Key obtains the key stored by the DefaultEntry.
func (d *DefaultEntry[V]) Key() string { return d.key }

// Value obtains the value stored by the DefaultEntry.
func (d *DefaultEntry[V]) Value() V { return d.value }

// NewBuildSource instantiates a BuildSource.
func NewBuildSource[V Constraint](options ...BuildOption[V]) *BuildSource[V] {
	b := &BuildSource[V]{cfg: defConfig, list: []Entry[V]{}}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// WithEntries configures the underlying list.
func WithEntries[V Constraint](list ...Entry[V]) BuildOption[V] {
	return func(b *BuildSource[V]) { b.list = append(b.list, list...) }
}

// WithBuildConfig configures the [Config] handed to the built [Trie].
func WithBuildConfig[V Constraint](cfg *Config) BuildOption[V] {
	return func(b *BuildSource[V]) { b.cfg = cfg }
}

// Len retrieves the length of the BuildSource.
func (b *BuildSource[V]) Len() int { return len(b.list) }

// Build generates a [Trie] from a BuildSource.
func (b *BuildSource[V]) Build(ctx context.Context) (t *Trie[V], err error) {
	builder := NewBuilder(WithConfig[V](b.cfg))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			// Skip expensive operation if not debug.
			if b.cfg.Debug {
				b.cfg.Logger.Debugf("current trie: %s \nsource: %s", spew.Sprint(builder.trie), spew.Sprint(b.list))
			}

			t, err = nil, fmt.Errorf("%w: %w", ErrBuildTrie, err)
		}
	}()

	if b.Len() < 1 {
		err = ErrEmptyTrieSrc
		return
	}

	for _, entry := range b.list {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		if err = builder.Insert(entry.Key(), entry.Value()); err != nil {
			err = fmt.Errorf("entry (%s): %w", entry.Key(), err)
			return
		}
	}

	return builder.Build(), nil
}
