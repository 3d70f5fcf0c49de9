package ffi

import "fmt"

// Symbol pairs a logical operation with the export that implements it.
// Fn must point at a func variable declared with the native signature.
type Symbol struct {
	Logical string
	Export  string
	Fn      any
}

// LoadSymbols binds every symbol in order and stops at the first one that
// is missing. On error the caller must discard whatever was already bound.
func LoadSymbols(m Module, syms []Symbol) error {
	for _, s := range syms {
		if err := m.Bind(s.Fn, s.Export); err != nil {
			return fmt.Errorf("resolve %s: %w", s.Logical, err)
		}
	}
	return nil
}
