package pwlfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/pamstim/pwl"
)

// Write emits tr as "time value" lines.
func Write(w io.Writer, tr pwl.Trace) error {
	bw := bufio.NewWriter(w)
	for _, bp := range tr {
		if _, err := fmt.Fprintf(bw, "%.6g %s\n", bp.T, bp.V); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes tr to it.
func WriteFile(path string, tr pwl.Trace) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	return Write(f, tr)
}

// FileName returns "<kind>_pwl_<k>_<n>_<tbit>_<tinterval>.txt".
//
//	FileName("data", 2, 3, 10e-9, 55e-9) == "data_pwl_2_3_1e-08_5.5e-08.txt"
func FileName(kind string, k, n int, tbit, tinterval float64) (string, error) {
	if kind == "" || k < 1 || n < 1 {
		return "", fmt.Errorf("FileName(%q, %d, %d): %w", kind, k, n, ErrBadName)
	}

	return kind + "_pwl_" + strconv.Itoa(k) + "_" + strconv.Itoa(n) + "_" +
		formatTime(tbit) + "_" + formatTime(tinterval) + ".txt", nil
}

// formatTime renders t in shortest round-trip form with a two-digit
// exponent: 1e-08, 5.5e-08, 0.001.
func formatTime(t float64) string {
	if a := math.Abs(t); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(t, 'e', -1, 64)
	}

	return strconv.FormatFloat(t, 'f', -1, 64)
}
