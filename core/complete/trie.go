package complete

import "sort"

// node is one rune deep in a Trie.
type node struct {
	children map[rune]*node
	end      bool
}

// Trie is a prefix tree of words.
type Trie struct {
	root node
	size int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{}
}

// Insert adds word, inserting a word twice is a no-op. Empty words are
// ignored.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}

	cur := &t.root
	for _, r := range word {
		if cur.children == nil {
			cur.children = make(map[rune]*node)
		}
		next, ok := cur.children[r]
		if !ok {
			next = &node{}
			cur.children[r] = next
		}
		cur = next
	}

	if !cur.end {
		cur.end = true
		t.size++
	}
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.end && word != ""
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.size
}

// Reset removes every word.
func (t *Trie) Reset() {
	t.root = node{}
	t.size = 0
}

// WithPrefix returns every word starting with prefix, depth first with
// siblings visited in rune order.
func (t *Trie) WithPrefix(prefix string) []string {
	start := t.find(prefix)
	if start == nil {
		return nil
	}

	var out []string
	buf := []rune(prefix)
	var walk func(n *node)
	walk = func(n *node) {
		if n.end {
			out = append(out, string(buf))
		}
		for _, r := range sortedKeys(n.children) {
			buf = append(buf, r)
			walk(n.children[r])
			buf = buf[:len(buf)-1]
		}
	}
	walk(start)

	return out
}

func (t *Trie) find(prefix string) *node {
	cur := &t.root
	for _, r := range prefix {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

func sortedKeys(children map[rune]*node) []rune {
	keys := make([]rune, 0, len(children))
	for r := range children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
