package fetch

import (
	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
)

// Bundle is the fully fetched, fully parsed input of one network. Labels
// carry the source names, index-aligned with their data.
type Bundle struct {
	Matrices     []*conmat.Dense
	MatrixLabels []string
	Aux          [][]float64
	AuxLabels    []string
	Linkage      []dendro.LinkageRow
}

// Set assembles the validated matrix store from the bundle, attaching every
// aux array under its label. Extra options (thumbnails) append after the aux
// attachments. Shape violations surface as conmat.ErrShape.
func (b *Bundle) Set(opts ...conmat.SetOption) (*conmat.Set, error) {
	all := make([]conmat.SetOption, 0, len(b.Aux)+len(opts))
	for i, a := range b.Aux {
		all = append(all, conmat.WithAux(b.AuxLabels[i], a))
	}
	all = append(all, opts...)

	return conmat.NewSet(b.Matrices, b.MatrixLabels, all...)
}
