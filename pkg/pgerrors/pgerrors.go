package pgerrors

import (
	"context"
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые различают репозитории
const (
	UniqueViolation      = "23505"
	ForeignKeyViolation  = "23503"
	SerializationFailure = "40001"
	InvalidTextRepr      = "22P02"
	QueryCanceled        = "57014"
)

// Code возвращает SQLSTATE ошибки Postgres или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Is проверяет, что err - ошибка Postgres с кодом code
func Is(err error, code string) bool {
	return err != nil && Code(err) == code
}

// Constraint возвращает имя нарушенного ограничения
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// IsTimeout сообщает, что запрос прерван по дедлайну контекста
// lib/pq отменяет запрос на сервере, и тогда вместо context.DeadlineExceeded приходит 57014
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || Is(err, QueryCanceled)
}
