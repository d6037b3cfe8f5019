package record

import (
	"errors"
	"fmt"
)

var (
	ErrHeaderMismatch = errors.New("header mismatch")
	ErrLengthMismatch = errors.New("length mismatch")
)

// Kind classifies a ValidationError.
type Kind int

const (
	HeaderMismatch Kind = iota + 1
	LengthMismatch
)

func (k Kind) String() string {
	switch k {
	case HeaderMismatch:
		return "HeaderMismatch"
	case LengthMismatch:
		return "LengthMismatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValidationError rejects a record before reconciliation.
type ValidationError struct {
	Kind   Kind
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// Is lets errors.Is match the sentinel for the error's kind.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case HeaderMismatch:
		return target == ErrHeaderMismatch
	case LengthMismatch:
		return target == ErrLengthMismatch
	}
	return false
}

// Validate checks n's structural invariants.
func Validate(n Normalized) error {
	return ValidatePair(n.AminoAcidHeader, n.AminoAcidSeq, n.NucleotideHeader, n.NucleotideSeq)
}

// ValidatePair requires identical headers and 3 × (non-gap residues) ==
// len(nt). Headers are checked first; only the first failure is returned.
func ValidatePair(aaHeader, aa, ntHeader, nt string) error {
	if aaHeader != ntHeader {
		return &ValidationError{
			Kind:   HeaderMismatch,
			Detail: fmt.Sprintf("AA header -> %s is not the same as NT header -> %s", aaHeader, ntHeader),
		}
	}

	want := Residues(aa) * 3
	got := len(nt)
	if want == got {
		return nil
	}
	if want > got {
		return &ValidationError{
			Kind: LengthMismatch,
			Detail: fmt.Sprintf("(AA -> %s) is larger than (NT -> %s) with a difference of %d PEP char(s)",
				aaHeader, ntHeader, (want-got)/3),
		}
	}
	return &ValidationError{
		Kind: LengthMismatch,
		Detail: fmt.Sprintf("(NT -> %s) is larger than (AA -> %s) with a difference of %d NT triplet(s)",
			ntHeader, aaHeader, (got-want)/3),
	}
}
