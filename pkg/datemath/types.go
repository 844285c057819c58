package datemath

import "time"

// DateFormat is the Brazilian day-first date layout used across the service.
const DateFormat = "02/01/2006"

// Soon is the unresolved-deadline marker: the user gave no date at all.
// Callers schedule "soon" tasks for the next day.
const Soon = "breve"

// DateExpr is the result of parsing a date fragment. It is either a resolved
// calendar date or the literal fragment that no rule matched.
type DateExpr struct {
	Date     time.Time // midnight in the parser's timezone, valid when Resolved
	Resolved bool
	Literal  string // original fragment when unresolved
}

// NewResolved builds a resolved DateExpr for the given date.
func NewResolved(date time.Time) DateExpr {
	return DateExpr{Date: date, Resolved: true}
}

// NewLiteral builds an unresolved DateExpr carrying the fragment verbatim.
func NewLiteral(fragment string) DateExpr {
	return DateExpr{Literal: fragment}
}

// IsSoon reports whether the expression is the "breve" placeholder.
func (e DateExpr) IsSoon() bool {
	return !e.Resolved && e.Literal == Soon
}

// String renders a resolved date as DD/MM/YYYY, otherwise the literal fragment.
func (e DateExpr) String() string {
	if e.Resolved {
		return e.Date.Format(DateFormat)
	}
	return e.Literal
}
