package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// DefaultDepth is the search depth used when a specification names a
// searching strategy without a depth.
const DefaultDepth = 2

// Factory builds a fresh strategy instance. Strategies are not safe for
// concurrent use, so each game asks its factory for its own instances.
// The seed is only used by strategies that make random choices.
type Factory func(seed uint64) Strategy

type entry struct {
	searches bool
	build    func(depth int, seed uint64) Strategy
}

var registry = map[string]entry{
	"random": {build: func(_ int, seed uint64) Strategy { return NewRandom(seed) }},
	"minimax": {searches: true, build: func(depth int, _ uint64) Strategy {
		return &Minimax{Depth: depth}
	}},
	"maximax": {searches: true, build: func(depth int, _ uint64) Strategy {
		return &Maximax{Depth: depth}
	}},
	"minimin": {searches: true, build: func(depth int, _ uint64) Strategy {
		return &Minimin{Depth: depth}
	}},
	"single": {searches: true, build: func(depth int, _ uint64) Strategy {
		return &SinglePlayer{Depth: depth}
	}},
	"additive": {searches: true, build: func(depth int, _ uint64) Strategy {
		return &Additive{Depth: depth}
	}},
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseSpec parses a strategy specification of the form "name" or
// "name:depth" and returns a factory for it. Names are case-insensitive.
// Searching strategies default to DefaultDepth; "random" takes no depth.
func ParseSpec(spec string) (Factory, error) {
	name, depthText, hasDepth := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.ToLower(name)

	e, ok := registry[name]
	if !ok {
		return nil, &errors.SpecError{Err: errors.ErrUnknownStrategy, Spec: spec}
	}

	depth := DefaultDepth
	if hasDepth {
		if !e.searches {
			return nil, &errors.SpecError{Err: errors.Wrapf(errors.ErrInvalidDepth, "%s takes no depth", name), Spec: spec}
		}
		d, err := strconv.Atoi(depthText)
		if err != nil || d < 0 {
			return nil, &errors.SpecError{Err: errors.Wrapf(errors.ErrInvalidDepth, "%q", depthText), Spec: spec}
		}
		depth = d
	}

	return func(seed uint64) Strategy { return e.build(depth, seed) }, nil
}
