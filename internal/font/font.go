// Package font resolves web font declarations into stable CSS class tokens.
//
// A resolved Font exposes its family stack through a CSS custom property. The
// property is scoped to a generated class name so that applying the class to
// an element makes the variable available to everything below it.
package font

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	classPrefix    = "__variable_"
	tokenHexLength = 6
	defaultDisplay = "swap"
)

var (
	ErrUnknownFamily     = errors.New("unknown font family")
	ErrUnsupportedSubset = errors.New("unsupported font subset")
	ErrUnsupportedWeight = errors.New("unsupported font weight")
	ErrInvalidVariable   = errors.New("invalid css variable name")
)

// Options declares a font the way a page layout asks for it.
type Options struct {
	Family   string
	Variable string
	Subsets  []string
	Weights  []string
	Display  string
}

// Font is the result of resolving Options against a Catalog.
type Font struct {
	Family    string
	Variable  string
	ClassName string
	Stack     string
	Display   string
	Subsets   []string
	Weights   []int

	face Face
}

// Resolver resolves font declarations against a fixed catalog.
type Resolver struct {
	catalog Catalog
}

func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

func (r *Resolver) Resolve(opts Options) (*Font, error) {
	face, ok := r.catalog[opts.Family]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", opts.Family, ErrUnknownFamily)
	}

	if !strings.HasPrefix(opts.Variable, "--") || len(opts.Variable) == 2 {
		return nil, fmt.Errorf("resolve %q variable %q: %w", opts.Family, opts.Variable, ErrInvalidVariable)
	}

	subsets := slices.Clone(opts.Subsets)
	for _, subset := range subsets {
		if !face.hasSubset(subset) {
			return nil, fmt.Errorf("resolve %q subset %q: %w", opts.Family, subset, ErrUnsupportedSubset)
		}
	}
	slices.Sort(subsets)
	subsets = slices.Compact(subsets)

	weights := make([]int, 0, len(opts.Weights))
	for _, w := range opts.Weights {
		weight, err := strconv.Atoi(w)
		if err != nil || !face.hasWeight(weight) {
			return nil, fmt.Errorf("resolve %q weight %q: %w", opts.Family, w, ErrUnsupportedWeight)
		}
		weights = append(weights, weight)
	}
	slices.Sort(weights)
	weights = slices.Compact(weights)

	display := opts.Display
	if display == "" {
		display = defaultDisplay
	}

	f := &Font{
		Family:   face.Family,
		Variable: opts.Variable,
		Stack:    fmt.Sprintf("'%s', '%s Fallback', %s", face.Family, face.Family, face.Generic),
		Display:  display,
		Subsets:  subsets,
		Weights:  weights,
		face:     face,
	}
	f.ClassName = classPrefix + f.token()

	return f, nil
}

// token digests the normalized declaration. Equal declarations always yield
// the same token.
func (f *Font) token() string {
	var b strings.Builder
	b.WriteString(f.Family)
	b.WriteByte('|')
	b.WriteString(f.Variable)
	b.WriteByte('|')
	b.WriteString(strings.Join(f.Subsets, ","))
	b.WriteByte('|')
	for i, w := range f.Weights {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(w))
	}
	b.WriteByte('|')
	b.WriteString(f.Display)

	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:tokenHexLength]
}

// axis returns the CSS2 API axis value, e.g. "wght@400;700" or "wght@100..900".
func (f *Font) axis() string {
	if len(f.Weights) == 0 {
		return fmt.Sprintf("wght@%d..%d", f.face.MinWeight, f.face.MaxWeight)
	}

	parts := make([]string, len(f.Weights))
	for i, w := range f.Weights {
		parts[i] = strconv.Itoa(w)
	}
	return "wght@" + strings.Join(parts, ";")
}
