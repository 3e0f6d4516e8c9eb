package document

import (
	"sort"
	"strconv"
	"strings"
)

// Separator joins the segments of a leaf path.
const Separator = "/"

//nolint:gochecknoglobals // stateless replacer shared by all flatten calls.
var segmentEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// View maps leaf paths to scalar values.
type View map[string]Value

// EscapeSegment escapes an object member name for use as a path segment.
func EscapeSegment(name string) string {
	return segmentEscaper.Replace(name)
}

// Flatten renders a tree as a View. Leaf paths start with a separator and
// array items are addressed by decimal index segments. Empty containers
// become null leaves and a scalar root is stored under the empty path.
func Flatten(root *Node) View {
	view := make(View)
	if root == nil {
		return view
	}

	flatten(root, "", view)

	return view
}

func flatten(node *Node, prefix string, view View) {
	switch node.kind {
	case KindObject:
		if len(node.members) == 0 {
			view[prefix] = Null()

			return
		}

		for _, m := range node.members {
			flatten(m.Node, prefix+Separator+EscapeSegment(m.Name), view)
		}
	case KindArray:
		if len(node.items) == 0 {
			view[prefix] = Null()

			return
		}

		for i, item := range node.items {
			flatten(item, prefix+Separator+strconv.Itoa(i), view)
		}
	default:
		view[prefix] = node.scalar
	}
}

// Keys returns the leaf paths in sorted order.
func (v View) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// String returns the view as a compact JSON object with sorted keys.
func (v View) String() string {
	return string(v.appendJSON(nil))
}

// MarshalJSON implements json.Marshaler.
func (v View) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

func (v View) appendJSON(dst []byte) []byte {
	dst = append(dst, '{')

	for i, k := range v.Keys() {
		if i > 0 {
			dst = append(dst, ',')
		}

		dst = appendString(dst, k)
		dst = append(dst, ':')
		dst = v[k].appendJSON(dst)
	}

	return append(dst, '}')
}
