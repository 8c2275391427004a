package txmanager

import "errors"

var (
	// ErrBeginTx не удалось открыть транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")
	// ErrCommit не удалось зафиксировать транзакцию
	ErrCommit = errors.New("txmanager: failed to commit transaction")
	// ErrSerialization конфликт сериализации, транзакцию можно повторить
	ErrSerialization = errors.New("txmanager: serialization failure")
)
