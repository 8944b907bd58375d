package packet

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Kind enumerates the codec's error taxonomy.
type Kind int

const (
	KindTruncated Kind = iota
	KindBadLength
	KindFlagViolation
	KindBadValue
	KindUnsupportedFamily
	KindOptionalMissing
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "Truncated"
	case KindBadLength:
		return "BadLength"
	case KindFlagViolation:
		return "FlagViolation"
	case KindBadValue:
		return "BadValue"
	case KindUnsupportedFamily:
		return "UnsupportedFamily"
	case KindOptionalMissing:
		return "OptionalMissing"
	case KindMalformed:
		return "Malformed"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by every parser and validator in
// this package. Only the fields relevant to the error are populated.
type Error struct {
	Kind   Kind
	Needed int      // Truncated: bytes still required; header BadLength: the declared length
	Type   AttrType // offending attribute, whenever one is known
	AFI    AFI      // UnsupportedFamily
	SAFI   SAFI     // UnsupportedFamily
	Offset int      // byte offset into the input where the error was raised
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	switch e.Kind {
	case KindTruncated:
		msg += fmt.Sprintf(" (need %d more bytes)", e.Needed)
	case KindFlagViolation, KindOptionalMissing:
		msg += fmt.Sprintf(" (attr type %d)", e.Type)
	case KindUnsupportedFamily:
		msg += fmt.Sprintf(" (afi=%s safi=%s)", e.AFI, e.SAFI)
	}
	if e.Offset != 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// wrapAttrErr attaches the attribute type being parsed to a lower-level
// error's cause chain, so the session layer can still recover the RFC 4271
// §6.3 NOTIFICATION sub-code after the error has propagated several frames
// up the dispatch path.
func wrapAttrErr(typ AttrType, err error) error {
	if err == nil {
		return nil
	}
	wrapped := errors.Wrapf(err, "attribute type %d", typ)
	if e, ok := err.(*Error); ok {
		clone := *e
		clone.Type = typ
		clone.Cause = wrapped
		return &clone
	}
	return &Error{Kind: KindMalformed, Type: typ, Cause: wrapped}
}

// RootCause drills through the wrapping performed by this package (and any
// github.com/pkg/errors wrapping underneath) down to the original error.
// It walks Unwrap() rather than pkg/errors' Cause()-only interface so it
// also sees through this package's own *Error.Unwrap chain.
func RootCause(err error) error {
	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func truncated(offset, needed int) error {
	return &Error{Kind: KindTruncated, Needed: needed, Offset: offset}
}
