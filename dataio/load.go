// SPDX-License-Identifier: MIT

package dataio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
)

// LoadZeroOneMatrix reads the sparse 0/1 file format: a "d n nnz" header
// followed by nnz "row col" pairs (1-indicating an entry), and returns the
// materialized d×n Dense matrix.
func LoadZeroOneMatrix(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	d, n, nnz, err := readTripleHeader(sc)
	if err != nil {
		return nil, dataioErrorf("LoadZeroOneMatrix", err)
	}
	m, err := matrix.NewDense(d, n)
	if err != nil {
		return nil, dataioErrorf("LoadZeroOneMatrix", err)
	}
	for i := 0; i < nnz; i++ {
		if !sc.Scan() {
			return nil, dataioErrorf("LoadZeroOneMatrix", fmt.Errorf("%w: expected %d entries, got %d", ErrMalformedRow, nnz, i))
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return nil, dataioErrorf("LoadZeroOneMatrix", fmt.Errorf("%w: %q", ErrMalformedRow, sc.Text()))
		}
		row, err1 := strconv.Atoi(fields[0])
		col, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, dataioErrorf("LoadZeroOneMatrix", fmt.Errorf("%w: %q", ErrMalformedRow, sc.Text()))
		}
		if err := m.Set(row, col, 1.0); err != nil {
			return nil, dataioErrorf("LoadZeroOneMatrix", err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dataioErrorf("LoadZeroOneMatrix", err)
	}
	return m, nil
}

// LoadDenseMatrix reads a "d n" header followed by d rows of n whitespace
// separated doubles.
func LoadDenseMatrix(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	d, n, err := readPairHeader(sc)
	if err != nil {
		return nil, dataioErrorf("LoadDenseMatrix", err)
	}
	m, err := matrix.NewDense(d, n)
	if err != nil {
		return nil, dataioErrorf("LoadDenseMatrix", err)
	}
	for i := 0; i < d; i++ {
		if !sc.Scan() {
			return nil, dataioErrorf("LoadDenseMatrix", fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedRow, d, i))
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != n {
			return nil, dataioErrorf("LoadDenseMatrix", fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformedRow, i, len(fields), n))
		}
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, dataioErrorf("LoadDenseMatrix", fmt.Errorf("%w: %q", ErrMalformedRow, f))
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, dataioErrorf("LoadDenseMatrix", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dataioErrorf("LoadDenseMatrix", err)
	}
	return m, nil
}

// LoadSymmetricMatrix reads an "n" header followed by the lower triangle
// (row i has i+1 entries), mirroring each entry onto the upper triangle, then
// validates the result via matrix.ValidateSymmetricWithOptions as a guard
// against a corrupted or hand-edited lower-triangle file.
func LoadSymmetricMatrix(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !sc.Scan() {
		return nil, dataioErrorf("LoadSymmetricMatrix", ErrMalformedHeader)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, dataioErrorf("LoadSymmetricMatrix", fmt.Errorf("%w: %q", ErrMalformedHeader, sc.Text()))
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, dataioErrorf("LoadSymmetricMatrix", err)
	}
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, dataioErrorf("LoadSymmetricMatrix", fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedRow, n, i))
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != i+1 {
			return nil, dataioErrorf("LoadSymmetricMatrix", fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformedRow, i, len(fields), i+1))
		}
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, dataioErrorf("LoadSymmetricMatrix", fmt.Errorf("%w: %q", ErrMalformedRow, f))
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, dataioErrorf("LoadSymmetricMatrix", err)
			}
			if j != i {
				if err := m.Set(j, i, v); err != nil {
					return nil, dataioErrorf("LoadSymmetricMatrix", err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dataioErrorf("LoadSymmetricMatrix", err)
	}
	if err := matrix.ValidateSymmetricWithOptions(m); err != nil {
		return nil, dataioErrorf("LoadSymmetricMatrix", err)
	}
	return m, nil
}

func readPairHeader(sc *bufio.Scanner) (a, b int, err error) {
	if !sc.Scan() {
		return 0, 0, ErrMalformedHeader
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, sc.Text())
	}
	a, err1 := strconv.Atoi(fields[0])
	b, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || a < 0 || b < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, sc.Text())
	}
	return a, b, nil
}

func readTripleHeader(sc *bufio.Scanner) (a, b, c int, err error) {
	if !sc.Scan() {
		return 0, 0, 0, ErrMalformedHeader
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, sc.Text())
	}
	a, err1 := strconv.Atoi(fields[0])
	b, err2 := strconv.Atoi(fields[1])
	c, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil || a < 0 || b < 0 || c < 0 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, sc.Text())
	}
	return a, b, c, nil
}
