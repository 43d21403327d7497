// SPDX-License-Identifier: MIT

package dataio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix/ops"
)

// SaveMatrix writes m as a "d n" header followed by d rows of n
// whitespace-separated doubles. highPrecision selects fixed 16-significant-
// digit formatting over the default 'g' shortest representation; the
// shortest form is the one that parses back to the exact same float64.
func SaveMatrix(w io.Writer, m matrix.Matrix, highPrecision bool) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	if _, err := fmt.Fprintf(bw, "%d %d\n", rows, cols); err != nil {
		return dataioErrorf("SaveMatrix", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return dataioErrorf("SaveMatrix", err)
			}
			if j > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return dataioErrorf("SaveMatrix", err)
				}
			}
			if _, err := bw.WriteString(formatFloat(v, highPrecision)); err != nil {
				return dataioErrorf("SaveMatrix", err)
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return dataioErrorf("SaveMatrix", err)
		}
	}
	return dataioErrorf("SaveMatrix", bw.Flush())
}

func formatFloat(v float64, highPrecision bool) string {
	if highPrecision {
		return strconv.FormatFloat(v, 'g', 16, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteDerivedFiles writes L.txt, L_inv.txt, and L_I_inv.txt into dir, where
// L_I = 0.9*L + 0.1*I. Grounded on original_source/cpp/bin/pre_process.cpp,
// which precomputes exactly these three artifacts once per dataset so every
// downstream run can load them cheaply.
func WriteDerivedFiles(dir string, l *matrix.Dense) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dataioErrorf("WriteDerivedFiles", err)
	}
	if err := writeMatrixFile(filepath.Join(dir, "L.txt"), l); err != nil {
		return err
	}

	lInv, err := ops.Inverse(l)
	if err != nil {
		return dataioErrorf("WriteDerivedFiles", fmt.Errorf("L is singular: %w", err))
	}
	if err := writeMatrixFile(filepath.Join(dir, "L_inv.txt"), lInv); err != nil {
		return err
	}

	identity, err := matrix.NewIdentity(l.Rows())
	if err != nil {
		return dataioErrorf("WriteDerivedFiles", err)
	}
	lI, err := matrix.Blend(l, identity, 0.9)
	if err != nil {
		return dataioErrorf("WriteDerivedFiles", err)
	}
	lIInv, err := ops.Inverse(lI)
	if err != nil {
		return dataioErrorf("WriteDerivedFiles", fmt.Errorf("L_I is singular: %w", err))
	}
	return writeMatrixFile(filepath.Join(dir, "L_I_inv.txt"), lIInv)
}

func writeMatrixFile(path string, m matrix.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return dataioErrorf("writeMatrixFile", err)
	}
	if err := SaveMatrix(f, m, true); err != nil {
		f.Close()
		return err
	}
	return dataioErrorf("writeMatrixFile", f.Close())
}
