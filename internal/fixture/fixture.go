// Package fixture reads paired ground-truth fixture streams and checks a converter against them.
//
// The input stream holds whitespace-separated "latitude longitude" pairs in sexagesimal form,
// the expected stream the matching "north east" pairs rounded to six significant digits.
package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrUnbalancedFixture is returned when the two streams do not pair up.
var ErrUnbalancedFixture = errors.New("fixture streams are unbalanced")

// Case is one fixture entry. Index is 1-based.
type Case struct {
	Index     int
	Latitude  string
	Longitude string
	North     float64
	East      float64
}

// Read consumes both streams pairwise and returns the cases in order.
func Read(input, expected io.Reader) ([]Case, error) {
	inputs, err := readPairs(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input stream: %w", err)
	}

	outputs, err := readPairs(expected)
	if err != nil {
		return nil, fmt.Errorf("failed to read expected stream: %w", err)
	}

	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("%w: %d inputs, %d expectations", ErrUnbalancedFixture, len(inputs), len(outputs))
	}

	cases := make([]Case, 0, len(inputs))
	for i := range inputs {
		c := Case{
			Index:     i + 1,
			Latitude:  inputs[i][0],
			Longitude: inputs[i][1],
		}
		if c.North, err = strconv.ParseFloat(outputs[i][0], 64); err != nil {
			return nil, fmt.Errorf("failed to parse expected north of case %d: %w", c.Index, err)
		}
		if c.East, err = strconv.ParseFloat(outputs[i][1], 64); err != nil {
			return nil, fmt.Errorf("failed to parse expected east of case %d: %w", c.Index, err)
		}
		cases = append(cases, c)
	}

	return cases, nil
}

// ReadFiles opens both fixture files and reads them with Read.
func ReadFiles(inputPath, expectedPath string) ([]Case, error) {
	input, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture input: %w", err)
	}
	defer input.Close()

	expected, err := os.Open(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture expectations: %w", err)
	}
	defer expected.Close()

	return Read(input, expected)
}

func readPairs(r io.Reader) ([][2]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var (
		pairs   [][2]string
		pending []string
	)
	for scanner.Scan() {
		pending = append(pending, scanner.Text())
		if len(pending) == 2 {
			pairs = append(pairs, [2]string{pending[0], pending[1]})
			pending = pending[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(pending) != 0 {
		return nil, fmt.Errorf("%w: dangling token %q", ErrUnbalancedFixture, pending[0])
	}

	return pairs, nil
}
