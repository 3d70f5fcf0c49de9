package ffi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNoCandidates is returned when a versioned accessor has no names to try.
// It means the caller passed an empty list, not that a symbol was missing.
var ErrNoCandidates = errors.New("no candidate symbols to resolve")

// Candidates is an ordered list of export names for one versioned accessor,
// newest first. The order is significant and is never sorted.
//
// Resolution follows the first-success, last-failure policy: names are tried
// in order and the first that binds wins. When none binds, the failure of
// the last name tried (the oldest revision) is the one reported.
type Candidates []string

// Choice records which candidate a versioned accessor was bound to.
type Choice struct {
	Symbol string
	// Misses are the candidates tried and rejected before Symbol, in order.
	Misses []string
}

// VersionError reports that no candidate resolved. Err is the failure of
// the last candidate attempted.
type VersionError struct {
	Candidates Candidates
	Err        error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("none of [%s] resolved: %v", strings.Join(e.Candidates, ", "), e.Err)
}

func (e *VersionError) Unwrap() error { return e.Err }

// Resolve binds fptr to the first candidate that m exports.
func (c Candidates) Resolve(m Module, fptr any) (Choice, error) {
	if len(c) == 0 {
		return Choice{}, ErrNoCandidates
	}

	var (
		misses []string
		last   error
	)
	for _, name := range c {
		err := m.Bind(fptr, name)
		if err == nil {
			return Choice{Symbol: name, Misses: misses}, nil
		}
		misses = append(misses, name)
		last = err
	}

	return Choice{}, &VersionError{Candidates: slices.Clone(c), Err: last}
}
