package main

import (
	"github.com/pkg/errors"

	"github.com/fractalqb/pointwise"
)

func loadMatcher(reffile, pred string) (*pointwise.Positional[pointwise.Value], error) {
	if reffile == "" {
		return nil, errors.New("no reference file")
	}
	mk, err := pointwise.Named(pred)
	if err != nil {
		return nil, err
	}
	ref, err := pointwise.ReadValueFile(reffile)
	if err != nil {
		return nil, errors.WithMessage(err, "reference")
	}
	return pointwise.Pointwise(mk, pointwise.ParseValues(ref)), nil
}
