// SPDX-License-Identifier: MIT
package trie

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Keys are matched one byte per edge; multi-byte characters never match the ASCII vocabulary and
// are skipped byte by byte by the caller.

// Constraint is the value type a [Trie] may hold at its terminal nodes.
type Constraint interface {
	constraints.Integer
}

type (
	// Trie defines a byte-indexed prefix tree mapping keys to values.
	//
	// Synchronization is unnecessary, a Trie is read-only once built.
	Trie[V Constraint] struct {
		// cfg contains a pointer to a [Config] shared with the [Builder].
		cfg *Config

		root *node[V]

		// nodes & keys are counted during insertion.
		nodes int
		keys  int
	}

	// node represents a prefix of zero or more keys.
	node[V Constraint] struct {
		children children[V]

		// value is valid iff terminal is set.
		value    V
		terminal bool
	}

	children[V Constraint] map[byte]*node[V]

	// Config defines configuration options for the [Builder] & [Trie]'s operations.
	Config struct {
		// Logger for [Trie] messages.
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Option defines the Builder functional option type.
	Option[V Constraint] func(*Builder[V])

	// VisitFunc receives every node during a [Trie.Walk]; returning false stops the walk.
	VisitFunc[V Constraint] func(prefix string, value V, terminal bool) bool
)

// Errors encountered when handling a Trie.
var (
	ErrEmptyKey = errors.New("empty key")
	ErrBuilt    = errors.New("trie already built")
)

var defConfig = DefConfig()

// DefConfig obtains the package's [Trie] default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

func newNode[V Constraint]() *node[V] { return &node[V]{children: make(children[V])} }

// Config retrieves the [Trie]'s options.
func (t *Trie[V]) Config() *Config { return t.cfg }

// Len is the number of nodes in the [Trie], the root included.
func (t *Trie[V]) Len() int { return t.nodes }

// Keys is the number of distinct keys stored in the [Trie].
func (t *Trie[V]) Keys() int { return t.keys }

// MatchAt descends the [Trie] from line[pos], returning the value of the first terminal node
// reached & the number of bytes consumed to reach it.
//
// The earliest terminal wins; a key that is a proper prefix of another shadows it.
func (t *Trie[V]) MatchAt(line string, pos int) (value V, length int, ok bool) {
	if t == nil || t.root == nil || pos < 0 || pos >= len(line) {
		return
	}

	current := t.root
	for index := pos; index < len(line); index++ {
		next, found := current.children[line[index]]
		if !found {
			return
		}
		current = next

		if current.terminal {
			return current.value, index - pos + 1, true
		}
	}

	return
}

// Lookup reports the value stored for an exact key.
func (t *Trie[V]) Lookup(key string) (value V, ok bool) {
	if t == nil || t.root == nil || key == "" {
		return
	}

	current := t.root
	for index := 0; index < len(key); index++ {
		if current, ok = current.children[key[index]]; !ok {
			return
		}
	}

	return current.value, current.terminal
}

// Walk performs breadth-first traversal on a [Trie], visiting each level's nodes in ascending
// edge order.
func (t *Trie[V]) Walk(fn VisitFunc[V]) {
	if t == nil || t.root == nil {
		return
	}

	type entry struct {
		prefix string
		node   *node[V]
	}

	// Level order traversal.
	queue := []entry{{node: t.root}}

	var front entry
	for len(queue) > 0 {
		// Pop from queue.
		front, queue = queue[0], queue[1:]

		if !fn(front.prefix, front.node.value, front.node.terminal) {
			return
		}

		for _, edge := range front.node.edges() {
			queue = append(queue, entry{prefix: front.prefix + string([]byte{edge}), node: front.node.children[edge]})
		}
	}
}

// Leaves returns the sorted keys of terminal nodes lacking children.
func (t *Trie[V]) Leaves() (leaves []string) {
	leaves = make([]string, 0)

	t.Walk(func(prefix string, _ V, _ bool) bool {
		if n := t.locate(prefix); n != nil && len(n.children) < 1 {
			leaves = append(leaves, prefix)
		}

		return true
	})
	slices.Sort(leaves)

	return
}

// locate returns the node reached by spelling prefix from the root.
func (t *Trie[V]) locate(prefix string) (current *node[V]) {
	current = t.root
	for index := 0; index < len(prefix) && current != nil; index++ {
		current = current.children[prefix[index]]
	}

	return
}

// edges lists a node's child edges in ascending order.
//
// Using the map directly is not guaranteed to follow the same order.
func (n *node[V]) edges() (edges []byte) {
	edges = make([]byte, 0, len(n.children))
	for edge := range n.children {
		edges = append(edges, edge)
	}
	slices.Sort(edges)

	return
}
