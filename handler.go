package dcmtree

import (
	"fmt"
	"io"
	"sort"

	"github.com/b71729/dcmtree/dictionary"
)

// RootIndex is the parent index passed for top-level elements
const RootIndex = 0

// Handler consumes decoded elements in stream (pre-)order. `parent` is the
// index previously returned for the enclosing sequence or item, or RootIndex.
// The returned index is passed as `parent` for anything the element encloses.
type Handler interface {
	HandleElement(parent int, element DataElement) int
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(parent int, element DataElement) int

// HandleElement calls f(parent, element)
func (f HandlerFunc) HandleElement(parent int, element DataElement) int {
	return f(parent, element)
}

/*
===============================================================================
    Tree
===============================================================================
*/

// Node is an element of a Tree together with the indices of its children.
type Node struct {
	Element  DataElement
	Parent   int
	Children []int
}

// Tree is a Handler that builds the element tree. Node 0 is the synthetic, empty root.
type Tree struct {
	Nodes []Node
}

// NewTree returns a Tree holding only the root node
func NewTree() *Tree {
	return &Tree{Nodes: []Node{{Parent: -1}}}
}

// HandleElement appends `element` as the last child of `parent`
func (t *Tree) HandleElement(parent int, element DataElement) int {
	index := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Element: element, Parent: parent})
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, index)
	return index
}

// Root returns the synthetic root node
func (t *Tree) Root() *Node {
	return &t.Nodes[RootIndex]
}

// Node returns the node at `index`
func (t *Tree) Node(index int) *Node {
	return &t.Nodes[index]
}

// Len returns the number of elements in the tree, excluding the root
func (t *Tree) Len() int {
	return len(t.Nodes) - 1
}

// Walk visits every node below the root in pre-order. `depth` is 0 for top-level elements.
// A non-nil error from `fn` stops the walk.
func (t *Tree) Walk(fn func(index, depth int, n *Node) error) error {
	return t.walk(RootIndex, -1, fn)
}

func (t *Tree) walk(index, depth int, fn func(index, depth int, n *Node) error) error {
	if index != RootIndex {
		if err := fn(index, depth, &t.Nodes[index]); err != nil {
			return err
		}
	}
	for _, child := range t.Nodes[index].Children {
		if err := t.walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the first node in pre-order carrying `tag`
func (t *Tree) Find(tag dictionary.Tag) (*Node, bool) {
	for i := 1; i < len(t.Nodes); i++ {
		if t.Nodes[i].Element.Tag == tag {
			return &t.Nodes[i], true
		}
	}
	return nil, false
}

// Describe returns one indented line per element, in pre-order
func (t *Tree) Describe() []string {
	lines := make([]string, 0, t.Len())
	_ = t.Walk(func(_, depth int, n *Node) error {
		lines = append(lines, n.Element.Describe(depth))
		return nil
	})
	return lines
}

/*
===============================================================================
    Counter
===============================================================================
*/

// Counter is a Handler that tallies elements without retaining them.
type Counter struct {
	Total    int
	ByVR     map[VR]int
	MaxDepth int
	depths   []int
}

// NewCounter returns an empty Counter
func NewCounter() *Counter {
	return &Counter{ByVR: make(map[VR]int), depths: []int{-1}}
}

// HandleElement counts `element`
func (c *Counter) HandleElement(parent int, element DataElement) int {
	c.Total++
	c.ByVR[element.VR]++
	depth := c.depths[parent] + 1
	if depth > c.MaxDepth {
		c.MaxDepth = depth
	}
	c.depths = append(c.depths, depth)
	return len(c.depths) - 1
}

// Add merges the tallies of `other` into `c`
func (c *Counter) Add(other *Counter) {
	c.Total += other.Total
	for vr, n := range other.ByVR {
		c.ByVR[vr] += n
	}
	if other.MaxDepth > c.MaxDepth {
		c.MaxDepth = other.MaxDepth
	}
}

// VRs returns the counted VRs in ascending order
func (c *Counter) VRs() []VR {
	vrs := make([]VR, 0, len(c.ByVR))
	for vr := range c.ByVR {
		vrs = append(vrs, vr)
	}
	sort.Slice(vrs, func(i, j int) bool { return vrs[i].Code() < vrs[j].Code() })
	return vrs
}

/*
===============================================================================
    Dumper
===============================================================================
*/

// Dumper is a Handler that writes each element as an indented line to a writer.
type Dumper struct {
	w      io.Writer
	depths []int
	err    error
}

// NewDumper returns a Dumper writing to `w`
func NewDumper(w io.Writer) *Dumper {
	return &Dumper{w: w, depths: []int{-1}}
}

// HandleElement writes `element`. After the first write error nothing more is written.
func (d *Dumper) HandleElement(parent int, element DataElement) int {
	depth := d.depths[parent] + 1
	d.depths = append(d.depths, depth)
	if d.err == nil {
		_, d.err = fmt.Fprintln(d.w, element.Describe(depth))
	}
	return len(d.depths) - 1
}

// Err returns the first write error encountered
func (d *Dumper) Err() error {
	return d.err
}

/*
===============================================================================
    MultiHandler
===============================================================================
*/

type multiHandler struct {
	handlers []Handler
	// indices[i][h] is the index handler h returned for element i
	indices [][]int
}

// MultiHandler returns a Handler that forwards every element to each of `handlers`,
// translating parent indices into each handler's own index space.
func MultiHandler(handlers ...Handler) Handler {
	root := make([]int, len(handlers))
	for i := range root {
		root[i] = RootIndex
	}
	return &multiHandler{handlers: handlers, indices: [][]int{root}}
}

func (m *multiHandler) HandleElement(parent int, element DataElement) int {
	children := make([]int, len(m.handlers))
	for h, handler := range m.handlers {
		children[h] = handler.HandleElement(m.indices[parent][h], element)
	}
	m.indices = append(m.indices, children)
	return len(m.indices) - 1
}
