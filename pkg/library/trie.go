package library

const alphabetSize = 26

// songTrie indexes normalized names by their letter path. Spaces are part of
// the stored name but never part of the path, so "hello world" and
// "helloworld" end on the same node.
type songTrie struct {
	root *trieNode
}

type trieNode struct {
	children [alphabetSize]*trieNode
	terminal bool
	name     string
}

func newSongTrie() *songTrie {
	return &songTrie{root: &trieNode{}}
}

// insert stores a normalized name. Inserting the same name twice leaves the
// trie unchanged. Names without a single letter are ignored, the root never
// becomes terminal.
func (t *songTrie) insert(name string) {
	curr := t.root

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 'a' || c > 'z' {
			continue
		}

		index := int(c - 'a')
		if curr.children[index] == nil {
			curr.children[index] = &trieNode{}
		}
		curr = curr.children[index]
	}

	if curr == t.root {
		return
	}

	curr.terminal = true
	curr.name = name
}

// contains reports whether the letter path of name ends on a terminal node.
func (t *songTrie) contains(name string) bool {
	curr := t.root

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 'a' || c > 'z' {
			continue
		}

		index := int(c - 'a')
		if curr.children[index] == nil {
			return false
		}
		curr = curr.children[index]
	}

	return curr.terminal
}

// walk visits every stored name depth-first, children in a→z order, a
// terminal emitted before its subtree. Returning false from fn stops the
// traversal. Each call starts a fresh traversal.
func (t *songTrie) walk(fn func(name string) bool) {
	walkNode(t.root, fn)
}

func walkNode(node *trieNode, fn func(name string) bool) bool {
	if node.terminal {
		if !fn(node.name) {
			return false
		}
	}

	for _, child := range node.children {
		if child == nil {
			continue
		}
		if !walkNode(child, fn) {
			return false
		}
	}

	return true
}
