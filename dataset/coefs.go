// SPDX-License-Identifier: MIT
// Package: nhdbn/dataset
//
// coefs.go — coefficient-file parsing for synthetic benchmarks.
//
// Format: one coefficient vector per line, bracketed, comma-or-space
// separated decimals, e.g. "[0.5, -0.2, 0.7]". Blank lines are skipped.
// Malformed tokens fail with ErrBadCoefLine carrying the line number and
// the offending line; nothing is retried or skipped silently.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// coefLineCutset holds the characters stripped from both ends of a line
// before tokenizing (brackets plus surrounding whitespace).
const coefLineCutset = "[] \t\r\n"

// ParseCoefs reads coefficient vectors from r, one bracketed list per
// line. Commas and whitespace are interchangeable separators.
func ParseCoefs(r io.Reader) ([][]float64, error) {
	var coefs [][]float64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Strip brackets and edges, unify separators, tokenize.
		stripped := strings.Trim(line, coefLineCutset)
		if stripped == "" {
			continue
		}
		tokens := strings.Fields(strings.ReplaceAll(stripped, ",", " "))

		row := make([]float64, 0, len(tokens))
		for _, tok := range tokens {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("ParseCoefs: line %d %q: token %q: %w",
					lineNo, line, tok, ErrBadCoefLine)
			}
			row = append(row, v)
		}
		coefs = append(coefs, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ParseCoefs: read: %w", err)
	}

	return coefs, nil
}

// ParseCoefsFile opens path and parses it with ParseCoefs.
func ParseCoefsFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ParseCoefsFile: %w", err)
	}
	defer f.Close()

	return ParseCoefs(f)
}
