// SPDX-License-Identifier: MIT

package dataio

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
)

// Dataset produces the d×n factor B whose Gram matrix L = BᵀB is the kernel
// a driver runs against.
type Dataset interface {
	Load() (b *matrix.Dense, err error)
}

// WishartDataset generates a Gaussian d×n factor with math/rand, grounded
// on original_source/cpp/bin/gen_wishart.cpp and the teacher's per-run,
// seeded rand.New(rand.NewSource(seed)) PRNG pattern (adapted here without a
// *testing.T, since this runs outside tests).
type WishartDataset struct {
	D, N int
	Seed uint32
}

var _ Dataset = WishartDataset{}

// Load implements Dataset.
func (w WishartDataset) Load() (*matrix.Dense, error) {
	if w.D <= 0 || w.N <= 0 {
		return nil, dataioErrorf("WishartDataset.Load", fmt.Errorf("invalid shape %dx%d", w.D, w.N))
	}
	b, err := matrix.NewDense(w.D, w.N)
	if err != nil {
		return nil, dataioErrorf("WishartDataset.Load", err)
	}
	rng := rand.New(rand.NewSource(int64(w.Seed)))
	for i := 0; i < w.D; i++ {
		for j := 0; j < w.N; j++ {
			if err := b.Set(i, j, rng.NormFloat64()); err != nil {
				return nil, dataioErrorf("WishartDataset.Load", err)
			}
		}
	}
	return b, nil
}

// fileBackedDataset reads an already-preprocessed 0/1 matrix file. The
// preprocessing that produces such a file (Netflix ratings, MovieLens
// ratings) is out of scope; this stub only documents the expected layout
// and fails clearly when the file is absent.
type fileBackedDataset struct {
	name string
	path string
}

var _ Dataset = fileBackedDataset{}

// Load implements Dataset.
func (f fileBackedDataset) Load() (*matrix.Dense, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, dataioErrorf(f.name+".Load", fmt.Errorf("%w: expected 0/1 matrix at %s (\"d n nnz\" header + nnz \"row col\" pairs)", ErrUnsupportedDataset, f.path))
	}
	defer file.Close()
	m, err := LoadZeroOneMatrix(file)
	if err != nil {
		return nil, dataioErrorf(f.name+".Load", err)
	}
	return m, nil
}

// NetflixDataset reads a Netflix-Prize-derived 0/1 matrix from path,
// produced by an external preprocessing step not implemented here.
func NetflixDataset(path string) Dataset { return fileBackedDataset{name: "NetflixDataset", path: path} }

// MovieLensDataset reads a MovieLens-derived 0/1 matrix from path, produced
// by an external preprocessing step not implemented here.
func MovieLensDataset(path string) Dataset {
	return fileBackedDataset{name: "MovieLensDataset", path: path}
}
