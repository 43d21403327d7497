// SPDX-License-Identifier: MIT

// Command dppgram materializes L = BᵀB for a dataset and writes L.txt,
// L_inv.txt, and L_I_inv.txt, the derived-file precomputation step run once
// per dataset ahead of many dppselect invocations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Alnusjaponica/DPP-MAP-Inference/dataio"
	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix/ops"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("dppgram", flag.ContinueOnError)
	dataset := fs.String("d", "wishart", "dataset: wishart|wishart_fixed_k|netflix|movie_lens")
	path := fs.String("path", "", "backing file for netflix/movie_lens datasets")
	n := fs.Int("n", 200, "ground set size for a generated wishart dataset")
	d := fs.Int("dim", 50, "factor dimension for a generated wishart dataset")
	seed := fs.Uint("seed", 0, "PRNG seed")
	out := fs.String("out", "data", "output directory")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	var b *matrix.Dense
	var err error
	switch *dataset {
	case "wishart", "wishart_fixed_k":
		b, err = dataio.WishartDataset{D: *d, N: *n, Seed: uint32(*seed)}.Load()
	case "netflix":
		b, err = dataio.NetflixDataset(*path).Load()
	case "movie_lens":
		b, err = dataio.MovieLensDataset(*path).Load()
	default:
		fmt.Fprintf(os.Stderr, "dppgram: unknown dataset %q\n", *dataset)
		return 1
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	bt, err := matrix.Transpose(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	lRaw, err := matrix.Product(bt, b)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	l, err := matrix.NewDense(lRaw.Rows(), lRaw.Cols())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for i := 0; i < lRaw.Rows(); i++ {
		for j := 0; j < lRaw.Cols(); j++ {
			v, _ := lRaw.At(i, j)
			if err := l.Set(i, j, v); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
	}

	if err := dataio.WriteDerivedFiles(*out, l); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, ops.ErrSingular) {
			return 2
		}
		return 1
	}
	return 0
}
