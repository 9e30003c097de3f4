package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"go_keiko_flashcards/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translateError はドライバ固有のエラーをアプリケーションのエラー種別に寄せます。
// 該当しないものはそのまま返します。
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	var connectErr *pgconn.ConnectError
	var netErr net.Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", model.ErrConflict, err)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return fmt.Errorf("%w: %v", model.ErrConflict, err)
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.As(err, &connectErr),
		errors.As(err, &netErr):
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}
	return err
}

// wrapError はリポジトリ名とメソッド名を付けてエラーを返します
func wrapError(op string, err error) error {
	translated := translateError(err)
	if errors.Is(translated, model.ErrNotFound) {
		return translated
	}
	return fmt.Errorf("%s: %w", op, translated)
}
