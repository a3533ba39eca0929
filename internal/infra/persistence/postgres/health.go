package postgres

import (
	"context"

	"bookmarks/internal/errors"

	"gorm.io/gorm"
)

// ReadinessChecker reports whether the database accepts connections.
type ReadinessChecker struct {
	db *gorm.DB
}

func NewReadinessChecker(db *gorm.DB) *ReadinessChecker {
	return &ReadinessChecker{db: db}
}

// Ready pings the primary connection pool.
func (c *ReadinessChecker) Ready(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}
