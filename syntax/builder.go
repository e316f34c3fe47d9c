package syntax

// builder owns the arena while a tree is being parsed. Nodes are appended
// and referenced by index; parents own their children through ID slices.
type builder struct {
	nodes []Node
}

func newBuilder(capacity int) *builder {
	return &builder{nodes: make([]Node, 0, capacity)}
}

func (b *builder) add(n Node) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, n)
	return id
}

func (b *builder) node(id NodeID) *Node {
	return &b.nodes[id]
}

func (b *builder) addSequence() NodeID {
	return b.add(Node{Kind: KindSequence})
}

func (b *builder) appendChild(parent, child NodeID) {
	p := &b.nodes[parent]
	p.Children = append(p.Children, child)
}

// lastChild returns the last child of parent, or InvalidNode.
func (b *builder) lastChild(parent NodeID) NodeID {
	c := b.nodes[parent].Children
	if len(c) == 0 {
		return InvalidNode
	}
	return c[len(c)-1]
}

// replaceLastChild swaps the last child of parent for child.
func (b *builder) replaceLastChild(parent, child NodeID) {
	c := b.nodes[parent].Children
	c[len(c)-1] = child
}

func (b *builder) appendItem(class NodeID, item ClassItem) {
	n := &b.nodes[class]
	n.Items = append(n.Items, item)
}

// popItem removes and returns the last item of class.
func (b *builder) popItem(class NodeID) (ClassItem, bool) {
	n := &b.nodes[class]
	if len(n.Items) == 0 {
		return ClassItem{}, false
	}
	it := n.Items[len(n.Items)-1]
	n.Items = n.Items[:len(n.Items)-1]
	return it, true
}

func (b *builder) lastItem(class NodeID) (ClassItem, bool) {
	items := b.nodes[class].Items
	if len(items) == 0 {
		return ClassItem{}, false
	}
	return items[len(items)-1], true
}

func (b *builder) tree(pattern string, root NodeID) *Tree {
	return &Tree{pattern: pattern, nodes: b.nodes, root: root}
}
