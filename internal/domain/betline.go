package domain

import "encoding/json"

// BetLine is one bookmaker's priced market instance for one game.
//
// The upstream Bets/Lines feed interleaves real lines with "{}" placeholders
// for market/bookmaker combinations that do not apply. A line is classified
// exactly once, while decoding: populated means the object carries at least
// one field and specifically a BMID. Downstream code calls Populated() and
// never inspects raw field presence again.
//
// Marshalling a populated line emits the original upstream bytes, so optional
// fields survive the round trip exactly as received.
type BetLine struct {
	ID        int64
	EntID     int64 // game identifier
	EntT      int   // entity type code
	Type      int   // market type identifier
	BMID      int   // bookmaker identifier
	Sponsored bool

	BMGID  *int64
	P      string // parameter, e.g. "0-0" or "2.5 Goals"
	PV     string
	PVs    []float64
	Link   string // affiliate link
	Frozen *bool

	Options []BetLineOption

	populated bool
	raw       json.RawMessage
}

// BetLineOption is a selectable outcome inside a bet line.
type BetLineOption struct {
	Num          int
	Rate         float64
	Fractional   string
	American     string
	OldRate      *float64
	OriginalRate float64
	URL          string
	Lead         *float64
}

// Populated reports whether the line is a real bet line rather than an
// upstream placeholder.
func (l *BetLine) Populated() bool { return l.populated }

func (l *BetLine) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*l = BetLine{}
	if len(fields) == 0 {
		return nil
	}
	if _, ok := fields["BMID"]; !ok {
		return nil
	}

	type plain BetLine // avoid recursing into this method
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = BetLine(p)
	l.populated = true
	l.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (l BetLine) MarshalJSON() ([]byte, error) {
	if !l.populated {
		return []byte("{}"), nil
	}
	return l.raw, nil
}
