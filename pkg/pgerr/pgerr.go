// Package pgerr классифицирует ошибки PostgreSQL драйвера lib/pq
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsUniqueViolation возвращает имя нарушенного ограничения, если err это unique_violation
func IsUniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == codeUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// IsSerializationFailure конфликт сериализуемой транзакции
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codeSerializationFailure
}

// IsDeadlock взаимная блокировка
func IsDeadlock(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codeDeadlockDetected
}

// IsRetryable ошибки, после которых транзакцию можно повторить
func IsRetryable(err error) bool {
	return IsSerializationFailure(err) || IsDeadlock(err)
}
