package market

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Series is a time-ordered sequence of bars. Sort order is enforced here,
// at construction, so downstream code can rely on ascending dates.
type Series struct {
	Bars []Bar
}

// NewSeries copies bars and sorts them ascending by date.
func NewSeries(bars []Bar) *Series {
	out := make([]Bar, len(bars))
	copy(out, bars)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date.Time)
	})
	return &Series{Bars: out}
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

func (s *Series) First() (Bar, error) {
	if s.Len() == 0 {
		return Bar{}, fmt.Errorf("market: series has no bars")
	}
	return s.Bars[0], nil
}

func (s *Series) Last() (Bar, error) {
	if s.Len() == 0 {
		return Bar{}, fmt.Errorf("market: series has no bars")
	}
	return s.Bars[len(s.Bars)-1], nil
}

// ParseSeriesJSON decodes an uploaded bar array and returns a sorted
// series.
func ParseSeriesJSON(r io.Reader) (*Series, error) {
	var bars []Bar
	if err := json.NewDecoder(r).Decode(&bars); err != nil {
		return nil, fmt.Errorf("market: decode bar series: %w", err)
	}
	return NewSeries(bars), nil
}
