package plates

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "plates",
})

// Parse converts the text of a force plate CSV export into a series. The first
// line is a header and is skipped. Lines with fewer than two fields (blank or
// trailing lines) are dropped. Fields which are missing or aren't numbers
// become NaN; Parse never fails.
func Parse(text string) Series {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return Series{}
	}

	series := Series{}
	for _, line := range lines[1:] {
		row := strings.Split(line, ",")
		if len(row) < 2 {
			continue
		}

		series = append(series, parseRow(row))
	}

	return series
}

func parseRow(row []string) Frame {
	f := Frame{}
	for i := range Offsets {
		f[i] = Sample{
			Z:  field(row, Column(i, FieldForceZ)),
			X:  field(row, Column(i, FieldForceX)),
			Y:  field(row, Column(i, FieldForceY)),
			T:  field(row, Column(i, FieldTorque)),
			Px: field(row, Column(i, FieldCopX)),
			Py: field(row, Column(i, FieldCopY)),
		}
	}

	return f
}

// field returns the numeric value of column n, or NaN if the row is too short
// or the text isn't a number.
func field(row []string, n int) float64 {
	if n >= len(row) {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(row[n]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return v
}

// Read parses a series from r.
func Read(r io.Reader) (Series, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading force plate data: %w", err)
	}

	return Parse(string(b)), nil
}

// LoadFile reads and parses the CSV file at path.
func LoadFile(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening force plate data: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, err
	}

	log.Infof("loaded %d frames from %s", s.Len(), path)
	return s, nil
}
