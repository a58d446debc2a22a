// SPDX-License-Identifier: MIT
// Package: minpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with `%w` ("RandomSparse: n=0 < min=1: ...").

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not apply its topology,
// typically because the core graph rejected a vertex or an edge.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadDocument indicates that a FromYAML document could not be decoded or
// describes an invalid topology (missing endpoints, duplicate pairs, ...).
var ErrBadDocument = errors.New("builder: bad graph document")
