package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// Postgres hands numeric aggregates to database/sql as text. Every such
// value crosses this boundary exactly once so a string can never leak
// into a JSON numeric field downstream.

func parseDecimal(raw sql.NullString) (decimal.Decimal, error) {
	if !raw.Valid || raw.String == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: coerce numeric %q: %w", raw.String, err)
	}
	return d, nil
}
