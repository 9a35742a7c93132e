// SPDX-License-Identifier: MIT

package core

// Clone returns a deep structural copy: vertices, edges, adjacency and the
// edge ID counter are duplicated, Metadata maps are copied key by key
// (values are shared). Mutating the clone never affects g.
//
// Complexity: O(V + E + total metadata keys).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		capacity:   g.capacity,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]string, len(g.adjacency)),
	}
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: id, Metadata: copyMetadata(v.Metadata)}
	}
	for eid, e := range g.edges {
		c.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Metadata: copyMetadata(e.Metadata), seq: e.seq}
	}
	for id, bucket := range g.adjacency {
		nb := make(map[string]string, len(bucket))
		for k, v := range bucket {
			nb[k] = v
		}
		c.adjacency[id] = nb
	}

	return c
}
