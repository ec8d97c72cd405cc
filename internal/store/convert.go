package store

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func tsValue(ts pgtype.Timestamptz) time.Time {
	return ts.Time
}

func tsPtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func toTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
