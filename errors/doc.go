// Package errors provides the coded error taxonomy shared by seqkit packages.
//
// Three families cover the sequence engine: range errors (ErrCodeOutOfRange)
// for invalid counts and indices, empty-sequence errors (ErrCodeEmptySequence)
// for folds and picks over no elements, and invalid-operation errors
// (ErrCodeInvalidOperation, ErrCodeUnsupportedValue) for protocol misuse.
//
//	_, err := sequence.TryApply(w, sequence.First[int]())
//	if errors.Is(err, seqerrors.ErrEmptySequence) { ... }
package errors
