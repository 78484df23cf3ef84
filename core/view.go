// File: view.go
// Role: Human-readable rendering of a Graph.

package core

import (
	"strconv"
	"strings"
)

// String renders the graph one city per line in sorted order:
//
//	Graph with 3 nodes:
//	A -> B(5) C(10)
//	B -> A(5) C(3)
//	C -> A(10) B(3)
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("Graph with ")
	sb.WriteString(strconv.Itoa(g.VertexCount()))
	sb.WriteString(" nodes:\n")

	for _, id := range g.Vertices() {
		sb.WriteString(id)
		sb.WriteString(" ->")
		for _, nb := range g.Neighbors(id) {
			sb.WriteByte(' ')
			sb.WriteString(nb)
			sb.WriteByte('(')
			sb.WriteString(strconv.FormatInt(g.Distance(id, nb), 10))
			sb.WriteByte(')')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
