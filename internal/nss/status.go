package nss

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/seafloor/grouper/internal/resolve"
	"github.com/seafloor/grouper/internal/wire"
)

// Code is the primary result of a host-facing call.
type Code int

const (
	// Success means the call completed and any buffer is populated.
	Success Code = iota

	// NotFound means no matching record exists. A normal negative
	// result, never a failure.
	NotFound

	// Unavailable means the backing store failed. Terminal for the call.
	Unavailable

	// TryAgain means the call is retryable; Reason says how.
	TryAgain
)

// Reason qualifies a TryAgain code.
type Reason int

const (
	// ReasonNone accompanies every non-TryAgain code.
	ReasonNone Reason = iota

	// ReasonOutOfRange: the supplied buffer was too small.
	ReasonOutOfRange

	// ReasonLimitReached: the gid array hit its caller-imposed ceiling.
	ReasonLimitReached
)

// Status is the single tagged result of every host-facing operation,
// folding the code and the capacity reason into one value.
type Status struct {
	Code   Code
	Reason Reason
}

var (
	StatusSuccess      = Status{Success, ReasonNone}
	StatusNotFound     = Status{NotFound, ReasonNone}
	StatusUnavailable  = Status{Unavailable, ReasonNone}
	StatusOutOfRange   = Status{TryAgain, ReasonOutOfRange}
	StatusLimitReached = Status{TryAgain, ReasonLimitReached}
)

func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case NotFound:
		return "NOTFOUND"
	case Unavailable:
		return "UNAVAIL"
	case TryAgain:
		return "TRYAGAIN"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "NONE"
	case ReasonOutOfRange:
		return "OUT_OF_RANGE"
	case ReasonLimitReached:
		return "LIMIT_REACHED"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

func (s Status) String() string {
	if s.Code == TryAgain {
		return s.Code.String() + "/" + s.Reason.String()
	}
	return s.Code.String()
}

// OK reports plain success.
func (s Status) OK() bool { return s.Code == Success }

// statusOf folds the internal error taxonomy into a Status. Capacity
// errors map to the two retryable statuses; everything else that is not
// a plain negative result is a store failure.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, resolve.ErrNotFound):
		return StatusNotFound
	case errors.Is(err, wire.ErrShortBuffer):
		return StatusOutOfRange
	case errors.Is(err, resolve.ErrCeilingReached):
		return StatusLimitReached
	default:
		slog.Error("group resolution unavailable", "error", err)
		return StatusUnavailable
	}
}
