// Package align inner-joins two adjusted instrument series on trade date.
package align

import (
	"fmt"

	"futures-etl/internal/model"
)

// NoOverlapError reports that two series share no common trade dates.
type NoOverlapError struct {
	Primary   string
	Secondary string
}

func (e *NoOverlapError) Error() string {
	return fmt.Sprintf("no overlapping trade dates between %s and %s", e.Primary, e.Secondary)
}

// Join produces one AlignedRow per trade date present in both series, sorted
// ascending. Dates present in only one series are dropped without error —
// contracts roll on different calendars and partial overlap is expected.
// primaryName/secondaryName are used only for error context.
func Join(primaryName, secondaryName string, primary, secondary []model.AdjustedBar) ([]model.AlignedRow, error) {
	secClose := make(map[string]float64, len(secondary))
	for _, b := range secondary {
		secClose[b.DateKey()] = b.AdjClose
	}

	// Primary is already sorted ascending, so the join output is too.
	rows := make([]model.AlignedRow, 0, len(primary))
	for _, b := range primary {
		sc, ok := secClose[b.DateKey()]
		if !ok {
			continue
		}
		rows = append(rows, model.AlignedRow{
			TradeDate:      b.TradeDate,
			PrimaryOpen:    b.AdjOpen,
			PrimaryClose:   b.AdjClose,
			SecondaryClose: sc,
		})
	}

	if len(rows) == 0 {
		return nil, &NoOverlapError{Primary: primaryName, Secondary: secondaryName}
	}
	return rows, nil
}
