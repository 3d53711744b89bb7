package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/fuzzy"
	"github.com/npillmayer/fuzzy/levelcut"
	"github.com/pkg/errors"
)

// parseBreakpoints parses a list of breakpoints of the form "x:mu,x:mu,...".
func parseBreakpoints(arg string) ([]levelcut.Breakpoint, error) {
	fields := strings.Split(arg, ",")
	points := make([]levelcut.Breakpoint, 0, len(fields))
	for _, f := range fields {
		xs, mus, ok := strings.Cut(strings.TrimSpace(f), ":")
		if !ok {
			return nil, errors.Errorf("breakpoint %q: expected x:mu", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "breakpoint %q", f)
		}
		mu, err := strconv.ParseFloat(mus, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "breakpoint %q", f)
		}
		points = append(points, levelcut.Breakpoint{X: x, Mu: mu})
	}
	return points, nil
}

// parseSet creates a fuzzy set from a breakpoint list or, if arg is a single
// number, a crisp set.
func parseSet(arg string, cfg fuzzy.Config) (fuzzy.Set, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return fuzzy.Set{}, errors.New("missing fuzzy number")
	}
	if c, err := strconv.ParseFloat(arg, 64); err == nil {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return fuzzy.Set{}, errors.Errorf("fuzzy number %q: not a finite number", arg)
		}
		return fuzzy.Crisp(c), nil
	}
	points, err := parseBreakpoints(arg)
	if err != nil {
		return fuzzy.Set{}, err
	}
	s, err := fuzzy.FromBreakpoints(points, cfg)
	return s, errors.Wrapf(err, "fuzzy number %q", arg)
}
