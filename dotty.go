package fuzzy

import (
	"fmt"
	"io"

	"github.com/npillmayer/fuzzy/interval"
)

type dotLevel struct {
	alpha float64
	comps interval.Union
	ids   []int
}

// Set2Dot outputs the component structure of a fuzzy set in Graphviz DOT
// format (for debugging purposes).
//
// Every node is a component of a level-cut, edges lead from a component to
// the components of the next higher level it contains. Only levels where the
// number of components changes are shown, together with the top level and
// the support.
func Set2Dot(s Set, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if s.IsEmpty() {
		io.WriteString(w, "}\n")
		return
	}
	levels := []dotLevel{{alpha: s.cuts[0].Alpha, comps: s.cuts[0].Components}}
	for _, c := range s.cuts[1:] {
		if c.Components.Len() != levels[len(levels)-1].comps.Len() {
			levels = append(levels, dotLevel{alpha: c.Alpha, comps: c.Components})
		}
	}
	levels = append(levels, dotLevel{alpha: 0, comps: s.support})
	nodelist, edgelist := "", ""
	id := 1
	for i := range levels {
		l := &levels[i]
		for iv := range l.comps.All() {
			l.ids = append(l.ids, id)
			label := fmt.Sprintf("α=%g\\n%s", l.alpha, iv)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(i, l.alpha == 0))
			id++
		}
		if i == 0 {
			continue
		}
		higher := levels[i-1]
		for k, hv := range higher.comps.Intervals() {
			j, ok := l.comps.Find(hv.Mid())
			if !ok {
				T().Errorf("set DOT: component %s at level %g has no parent", hv, higher.alpha)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", l.ids[j], higher.ids[k])
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(depth int, isSupport bool) string {
	s := ",style=filled"
	if isSupport {
		s += ",shape=box"
	} else {
		s += ",shape=ellipse"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}
