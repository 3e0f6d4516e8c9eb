package document

// Member is a named child of an object node.
type Member struct {
	Name string
	Node *Node
}

// Node is an element of a parsed configuration tree.
// Object members keep the order in which they were first set.
type Node struct {
	kind    Kind
	scalar  Value
	members []Member
	index   map[string]int
	items   []*Node
}

// Scalar wraps a leaf value into a node.
func Scalar(v Value) *Node {
	return &Node{kind: v.Kind(), scalar: v}
}

// NewObject creates an empty object node.
func NewObject() *Node {
	return &Node{kind: KindObject, index: make(map[string]int)}
}

// NewArray creates an array node holding the given items.
func NewArray(items ...*Node) *Node {
	return &Node{kind: KindArray, items: items}
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the scalar value of a leaf node. Containers report null.
func (n *Node) Value() Value {
	if n.kind == KindObject || n.kind == KindArray {
		return Null()
	}

	return n.scalar
}

// Set adds or replaces an object member. A repeated name keeps its
// original position and takes the last value.
func (n *Node) Set(name string, child *Node) {
	if n.kind != KindObject {
		return
	}

	if pos, ok := n.index[name]; ok {
		n.members[pos].Node = child

		return
	}

	n.index[name] = len(n.members)
	n.members = append(n.members, Member{Name: name, Node: child})
}

// Append adds an item to an array node.
func (n *Node) Append(child *Node) {
	if n.kind != KindArray {
		return
	}

	n.items = append(n.items, child)
}

// Members returns the object members in order.
func (n *Node) Members() []Member {
	return n.members
}

// Items returns the array items in order.
func (n *Node) Items() []*Node {
	return n.items
}

// Len returns the number of members or items of a container, zero for leaves.
func (n *Node) Len() int {
	switch n.kind {
	case KindObject:
		return len(n.members)
	case KindArray:
		return len(n.items)
	default:
		return 0
	}
}

// String returns the compact JSON serialization of the tree.
func (n *Node) String() string {
	return string(n.appendJSON(nil))
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.appendJSON(nil), nil
}

func (n *Node) appendJSON(dst []byte) []byte {
	switch n.kind {
	case KindObject:
		dst = append(dst, '{')

		for i, m := range n.members {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = appendString(dst, m.Name)
			dst = append(dst, ':')
			dst = m.Node.appendJSON(dst)
		}

		return append(dst, '}')
	case KindArray:
		dst = append(dst, '[')

		for i, item := range n.items {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = item.appendJSON(dst)
		}

		return append(dst, ']')
	default:
		return n.scalar.appendJSON(dst)
	}
}
