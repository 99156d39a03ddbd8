// SPDX-License-Identifier: MIT
package trie

import (
	"fmt"
	"strings"
)

const (
	// RootMarker labels the root node in the serialization output.
	RootMarker = '^'

	// EndMarker a `rune` indicating the end of a node's children.
	EndMarker = ')'

	// Splitter is the character used to split the serialization output.
	Splitter = ','

	// ValueMarker separates a terminal node's edge from its value.
	ValueMarker = '='
)

// Serialize transforms a [Trie] into a string.
//
// Children are emitted in ascending edge order, so structurally equivalent tries yield identical
// output, e.g. a trie holding "ab"=1 & "7"=7 serializes to "^,7=7),a,b=1)))".
func (t *Trie[V]) Serialize() (output string) {
	if t == nil || t.root == nil {
		return
	}

	var buffer strings.Builder
	t.root.serialize(string(RootMarker), &buffer)
	output = buffer.String()

	if t.cfg.Debug {
		t.cfg.Logger.Debugf("serialized trie: %s", output)
	}

	return
}

// serialize performs the serialization grunt work.
func (n *node[V]) serialize(label string, buffer *strings.Builder) {
	buffer.WriteString(label)
	if n.terminal {
		fmt.Fprintf(buffer, "%c%v", ValueMarker, n.value)
	}

	for _, edge := range n.edges() {
		buffer.WriteRune(Splitter)
		n.children[edge].serialize(string([]byte{edge}), buffer)
	}
	buffer.WriteRune(EndMarker)
}
