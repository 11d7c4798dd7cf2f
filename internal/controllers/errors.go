package controllers

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// isDuplicateKey reports whether err is a uniqueness violation. GORM is
// configured with TranslateError so the usual signal is
// gorm.ErrDuplicatedKey; the raw postgres 23505 check covers writes
// that bypass translation (Exec, raw SQL).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
