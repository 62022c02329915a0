package coupon

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

// ErrEmailTaken is returned by Insert when the email already subscribed.
var ErrEmailTaken = errors.New("this email is already subscribed")

// MySQLStore implements Store over the 'subscribers' table.
type MySQLStore struct {
	DB *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db}
}

func (s *MySQLStore) FindByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	query := `
		SELECT id, email, coupon_code, coupon_used, coupon_used_at, created_at
		FROM subscribers
		WHERE email = ?`

	var sub models.Subscriber
	err := s.DB.QueryRowContext(ctx, query, email).Scan(
		&sub.ID,
		&sub.Email,
		&sub.CouponCode,
		&sub.CouponUsed,
		&sub.CouponUsedAt,
		&sub.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Insert registers a new subscriber with an unused coupon. A duplicate
// email maps to ErrEmailTaken (unique key on email).
func (s *MySQLStore) Insert(ctx context.Context, sub *models.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, coupon_code, coupon_used, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.DB.ExecContext(ctx, query, sub.ID, sub.Email, sub.CouponCode, sub.CouponUsed, sub.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// MarkCouponUsed flips the used flag only when it is still clear; the
// losing side of a race sees zero rows affected.
func (s *MySQLStore) MarkCouponUsed(ctx context.Context, email, code string, usedAt time.Time) (bool, error) {
	query := `
		UPDATE subscribers
		SET coupon_used = 1, coupon_used_at = ?
		WHERE email = ? AND coupon_code = ? AND coupon_used = 0`

	result, err := s.DB.ExecContext(ctx, query, usedAt, email, code)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
