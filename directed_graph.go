package npchunk

// Vertex in graph
type Vertex string

// DirectedGraph represents a directed graph. Vertices and arcs keep the order
// they were added in, so every traversal is reproducible
type DirectedGraph struct {
	Arcs     map[Vertex][]Vertex
	Vertices []Vertex

	known map[Vertex]bool
}

// NewDirectedGraph creates a new DirectedGraph
func NewDirectedGraph() *DirectedGraph {
	g := new(DirectedGraph)
	g.Arcs = make(map[Vertex][]Vertex)
	g.known = make(map[Vertex]bool)
	return g
}

// AddVertex adds a vertex without any arc. Nothing happens if v exists
func (g *DirectedGraph) AddVertex(v Vertex) {
	if g.known[v] {
		return
	}
	g.known[v] = true
	g.Vertices = append(g.Vertices, v)
}

// Add adds an arc into graph
func (g *DirectedGraph) Add(s, t Vertex) {
	g.AddVertex(s)
	g.AddVertex(t)
	if !g.HasArc(s, t) {
		g.Arcs[s] = append(g.Arcs[s], t)
	}
}

// HasArc returns whether arc (s, t) exists in this graph
func (g *DirectedGraph) HasArc(s, t Vertex) bool {
	for _, v := range g.Arcs[s] {
		if v == t {
			return true
		}
	}
	return false
}

// DFS runs depth-first search on graph from s and returns the vertices in
// post-order: a vertex comes after every vertex reachable from it that was not
// visited before.
// It will not visit the vertices where visited[V] == true.
// After finished, it will update the visited map
func (g *DirectedGraph) DFS(s Vertex, visited map[Vertex]bool) []Vertex {
	if visited[s] || !g.known[s] {
		return []Vertex{}
	}
	visited[s] = true

	order := []Vertex{}
	for _, next := range g.Arcs[s] {
		order = append(order, g.DFS(next, visited)...)
	}
	return append(order, s)
}

// PostOrder returns all vertices in depth-first post-order, starting the
// searches in the order vertices were added. For an acyclic graph every
// vertex comes after all of its successors
func (g *DirectedGraph) PostOrder() []Vertex {
	visited := map[Vertex]bool{}
	order := []Vertex{}
	for _, v := range g.Vertices {
		order = append(order, g.DFS(v, visited)...)
	}
	return order
}

// TopologicalSort sorts the graph by topological order: for each arc (s, t), s
// comes before t. Only meaningful when the graph has no cycle
func (g *DirectedGraph) TopologicalSort() []Vertex {
	order := g.PostOrder()
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// Transpose returns the reversed graph of g
func (g *DirectedGraph) Transpose() *DirectedGraph {
	reversed := NewDirectedGraph()
	for _, v := range g.Vertices {
		reversed.AddVertex(v)
	}
	for _, s := range g.Vertices {
		for _, t := range g.Arcs[s] {
			reversed.Add(t, s)
		}
	}
	return reversed
}

// StrongComponents finds strong connected components with Kosaraju's
// algorithm. Components of a single vertex are returned only when the vertex
// has an arc to itself
func (g *DirectedGraph) StrongComponents() [][]Vertex {
	visited := map[Vertex]bool{}
	components := [][]Vertex{}
	finished := g.TopologicalSort()
	gt := g.Transpose()
	for _, v := range finished {
		if visited[v] {
			continue
		}

		component := gt.DFS(v, visited)
		if len(component) == 1 && !g.HasArc(v, v) {
			continue
		}
		components = append(components, component)
	}
	return components
}
