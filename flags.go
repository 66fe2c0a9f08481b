package rdxplot

import (
	"fmt"
	"strconv"
	"strings"
)

// BinRange is the histogram binning spec passed on the command line as
// "(bins,min,max)", e.g. "(80,-3,12)".
type BinRange struct {
	Bins     int
	Min, Max float64
}

func ParseBinRange(s string) (BinRange, error) {
	var r BinRange
	trimmed := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "("), ")")
	fields := strings.Split(trimmed, ",")
	if len(fields) != 3 {
		return r, fmt.Errorf("bin range %q: want (bins,min,max)", s)
	}

	bins, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return r, fmt.Errorf("bin range %q: %v", s, err)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return r, fmt.Errorf("bin range %q: %v", s, err)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return r, fmt.Errorf("bin range %q: %v", s, err)
	}

	if bins <= 0 {
		return r, fmt.Errorf("bin range %q: bins must be positive", s)
	}
	if max <= min {
		return r, fmt.Errorf("bin range %q: max must exceed min", s)
	}

	r.Bins, r.Min, r.Max = bins, min, max
	return r, nil
}

func (r BinRange) String() string {
	return fmt.Sprintf("(%d,%v,%v)", r.Bins, r.Min, r.Max)
}

// FloatArrayFlags collects repeated float-valued flags. A default
// array may be preloaded; the first Set discards it.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

// StringArrayFlags collects repeated string-valued flags.
type StringArrayFlags struct {
	Array   []string
	beenSet bool
}

func (f *StringArrayFlags) Set(value string) error {
	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *StringArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

// BinRangeArrayFlags collects repeated "(bins,min,max)" flags.
type BinRangeArrayFlags struct {
	Array   []BinRange
	beenSet bool
}

func (f *BinRangeArrayFlags) Set(value string) error {
	r, err := ParseBinRange(value)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, r)
	return nil
}

func (f *BinRangeArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}
