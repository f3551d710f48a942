package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"targetrack/internal/models"
)

// MonthKey is a month as sent by a performance endpoint: either a number
// (3) or a "YYYY-MM" string ("2025-03").
type MonthKey string

// UnmarshalJSON accepts both numeric and string month keys.
func (k *MonthKey) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*k = MonthKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("month key must be a number or string: %w", err)
	}
	*k = MonthKey(n.String())
	return nil
}

// Month parses the key into 1..12. For "YYYY-MM" keys the part after the
// last separator is used.
func (k MonthKey) Month() (int, error) {
	s := strings.TrimSpace(string(k))
	if i := strings.LastIndexAny(s, "-/"); i >= 0 {
		s = s[i+1:]
	}
	m, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid month key %q", string(k))
	}
	if !models.ValidMonth(m) {
		return 0, fmt.Errorf("month key %q out of range", string(k))
	}
	return m, nil
}

// RawPerformancePoint is a performance point before month normalization.
type RawPerformancePoint struct {
	Month       MonthKey `json:"month"`
	Target      int64    `json:"target"`
	Achievement int64    `json:"achievement"`
	Percentage  float64  `json:"percentage"`
}

// NormalizePerformance converts raw points to numeric months and sorts them
// ascending. The percentage is recomputed so a zero target always reads 0.
func NormalizePerformance(raw []RawPerformancePoint) ([]MonthlyPoint, error) {
	points := make([]MonthlyPoint, 0, len(raw))
	for _, r := range raw {
		m, err := r.Month.Month()
		if err != nil {
			return nil, err
		}
		points = append(points, MonthlyPoint{
			Month:       m,
			Target:      r.Target,
			Achievement: r.Achievement,
			Percentage:  models.Percentage(r.Target, r.Achievement),
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points, nil
}
