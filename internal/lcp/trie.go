package lcp

// Trie computes the LCP by inserting every string into a transient prefix
// tree and walking the unique path shared by all of them from the root.
// The tree lives only for the duration of the call.
func Trie(strs []string) (string, error) {
	if len(strs) == 0 {
		return "", ErrEmptyInput
	}
	if len(strs) == 1 {
		return strs[0], nil
	}

	t := newTrie()
	for _, s := range strs {
		t.insert(s)
	}
	return t.longestCommonPrefix(), nil
}

// trie is an arena-backed prefix tree. Nodes live in a single slice and refer
// to children by index, keeping ownership explicit: the whole structure is
// released in one piece when the enclosing call returns.
type trie struct {
	nodes    []trieNode
	inserted int
}

type trieNode struct {
	children map[byte]int32
	// count is the number of inserted strings whose path passes through this
	// node. Unused on the root.
	count int
	// end marks that an inserted string terminates at this node.
	end bool
}

func newTrie() *trie {
	// Index 0 is the root.
	return &trie{nodes: make([]trieNode, 1)}
}

func (t *trie) insert(s string) {
	cur := int32(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		next, ok := t.nodes[cur].children[c]
		if !ok {
			next = int32(len(t.nodes))
			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[byte]int32)
			}
			t.nodes[cur].children[c] = next
			t.nodes = append(t.nodes, trieNode{})
		}
		cur = next
		t.nodes[cur].count++
	}
	t.nodes[cur].end = true
	t.inserted++
}

// longestCommonPrefix walks from the root while exactly one child exists,
// every inserted string passes through it, and no inserted string has
// terminated yet. Any branch, termination, or count mismatch ends the walk.
func (t *trie) longestCommonPrefix() string {
	var prefix []byte
	cur := int32(0)
	for {
		node := t.nodes[cur]
		if node.end || len(node.children) != 1 {
			break
		}
		var c byte
		var next int32
		for k, v := range node.children {
			c, next = k, v
		}
		if t.nodes[next].count != t.inserted {
			break
		}
		prefix = append(prefix, c)
		cur = next
	}
	return string(prefix)
}
