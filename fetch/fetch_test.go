package fetch_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/fetch"
	"github.com/katalvlaran/connectome/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matrixText = "0 0.9\n0.9 0\n"

// TestLoad_FullRequest fetches matrices, aux data, and a linkage table, and
// checks order, labels, and the Set convenience.
func TestLoad_FullRequest(t *testing.T) {
	req := fetch.Request{
		Matrices: []fetch.Source{
			fetch.Bytes("corr.txt", []byte(matrixText)),
			fetch.Bytes("alt.txt", []byte("0 2\n2 0\n")),
		},
		Aux:     []fetch.Source{fetch.Bytes("degree.txt", []byte("5 7\n"))},
		Linkage: fetch.Bytes("linkage.txt", []byte("1 2 0.1\n")),
	}

	b, err := fetch.Load(context.Background(), req, fetch.WithConcurrency(2))
	require.NoError(t, err)

	assert.Equal(t, []string{"corr.txt", "alt.txt"}, b.MatrixLabels, "request order preserved")
	require.Len(t, b.Matrices, 2)
	v, err := b.Matrices[1].At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, [][]float64{{5, 7}}, b.Aux)
	require.Len(t, b.Linkage, 1)

	set, err := b.Set()
	require.NoError(t, err)
	assert.Equal(t, 2, set.N())
	assert.Equal(t, 1, set.AuxCount())

	// The bundle feeds construction directly.
	nw, err := network.Construct(set,
		network.WithLinkage(b.Linkage),
		network.WithClusterCount(1))
	require.NoError(t, err)
	assert.Equal(t, 2, nw.N())
}

// TestLoad_EmptyRequest requires at least one matrix source.
func TestLoad_EmptyRequest(t *testing.T) {
	_, err := fetch.Load(context.Background(), fetch.Request{})
	assert.ErrorIs(t, err, fetch.ErrEmptyRequest)
}

// TestLoad_ParseFailure propagates a parse error wrapped with the source
// name, and no bundle is returned.
func TestLoad_ParseFailure(t *testing.T) {
	req := fetch.Request{
		Matrices: []fetch.Source{
			fetch.Bytes("good.txt", []byte(matrixText)),
			fetch.Bytes("ragged.txt", []byte("1 2\n3\n")),
		},
	}

	b, err := fetch.Load(context.Background(), req)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, conmat.ErrShape)
	assert.Contains(t, err.Error(), "ragged.txt", "failure names its source")
}

// failingSource errors on Open.
type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Open(context.Context) (io.ReadCloser, error) {
	return nil, errors.New("fetch test: unreachable source")
}

// TestLoad_OpenFailure propagates source open errors.
func TestLoad_OpenFailure(t *testing.T) {
	req := fetch.Request{
		Matrices: []fetch.Source{fetch.Bytes("ok", []byte(matrixText)), failingSource{}},
	}

	_, err := fetch.Load(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

// TestLoad_ReaderSource covers the single-use reader wrapper.
func TestLoad_ReaderSource(t *testing.T) {
	req := fetch.Request{
		Matrices: []fetch.Source{fetch.Reader("stream", strings.NewReader(matrixText))},
	}

	b, err := fetch.Load(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"stream"}, b.MatrixLabels)
}
