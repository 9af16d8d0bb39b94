package network

import "github.com/katalvlaran/connectome/conmat"

// defaultScale picks the initial scale selection: the first matrix for edge
// width and colour, the first aux source for node colour (-1 when the store
// has none).
func defaultScale(set *conmat.Set) Scale {
	s := Scale{}
	if set.AuxCount() == 0 {
		s.NodeColourIndex = -1
	}

	return s
}

// recomputeScale derives the value domains of the current scale selection
// from the store's cached statistics: absolute bounds for edge width, signed
// bounds for edge and node colour. It runs after every mutation (threshold,
// cluster count, or index change); it is O(1) and touches nothing
// downstream.
func (nw *Network) recomputeScale() {
	if st, err := nw.set.MatrixStats(nw.scale.EdgeWidthIndex); err == nil {
		nw.scale.WidthDomain = [2]float64{st.AbsMin, st.AbsMax}
	}
	if st, err := nw.set.MatrixStats(nw.scale.EdgeColourIndex); err == nil {
		nw.scale.ColourDomain = [2]float64{st.Min, st.Max}
	}
	if nw.scale.NodeColourIndex >= 0 {
		if st, err := nw.set.AuxStats(nw.scale.NodeColourIndex); err == nil {
			nw.scale.NodeColourDomain = [2]float64{st.Min, st.Max}
		}
	}
}
