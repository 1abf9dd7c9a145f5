// Package arch parses the architecture file format spec.md §6 describes: a
// batch size on the first line, the true input dimension on the second,
// and one layer output dimension per remaining line. Each value is
// converted to its bit width (ceil(log2(n))) since every other package in
// this repository works in bits, not element counts.
//
// Grounded on original_source/util.cc's read_architecture_from_file.
package arch

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zghodsi/safetynets-gkr/network"
)

// Read parses an architecture description from r into one LayerDims per
// layer, in input-layer-first order.
func Read(r io.Reader) ([]network.LayerDims, error) {
	scanner := bufio.NewScanner(r)

	batch, err := readBitWidth(scanner, "batch size")
	if err != nil {
		return nil, err
	}
	prev, err := readBitWidth(scanner, "input dimension")
	if err != nil {
		return nil, err
	}

	var dims []network.LayerDims
	lineNo := 2
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		curr, err := bitWidthOf(line)
		if err != nil {
			return nil, fmt.Errorf("arch: line %d: %w", lineNo, err)
		}
		dims = append(dims, network.LayerDims{E: batch, D: prev, F: curr})
		prev = curr
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("arch: %w", err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("arch: no layers found")
	}
	return dims, nil
}

func readBitWidth(scanner *bufio.Scanner, what string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("arch: missing %s line", what)
	}
	width, err := bitWidthOf(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("arch: %s: %w", what, err)
	}
	return width, nil
}

// bitWidthOf parses a decimal count and returns ceil(log2(n)).
func bitWidthOf(s string) (int, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%q must be positive", s)
	}
	return int(math.Ceil(math.Log2(n))), nil
}
