package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/calendar"
)

var (
	ErrNoBuckets = errors.New("no buckets given")
	ErrNoTerms   = errors.New("no terms given")
)

// Pairs is the cross product of buckets and terms, bucket-major.
func Pairs(buckets []bucket.Bucket, terms []calendar.TermTz) []Pair {
	out := make([]Pair, 0, len(buckets)*len(terms))
	for _, b := range buckets {
		for _, t := range terms {
			out = append(out, Pair{Bucket: b, Term: t})
		}
	}
	return out
}

// ParsePairs parses comma-separated bucket and term lists and returns their
// cross product. Terms without a bracketed zone get def.
func ParsePairs(buckets, terms string, def *time.Location) ([]Pair, error) {
	bs, err := bucket.ParseList(buckets)
	if err != nil {
		return nil, err
	}
	if len(bs) == 0 {
		return nil, ErrNoBuckets
	}
	ts, err := calendar.ParseTermTzList(terms, def)
	if err != nil {
		return nil, err
	}
	if len(ts) == 0 {
		return nil, ErrNoTerms
	}
	return Pairs(bs, ts), nil
}

// String renders the pair as "5x16 Cal22[America/New_York]".
func (p Pair) String() string {
	return fmt.Sprintf("%s %s", p.Bucket, p.Term)
}
