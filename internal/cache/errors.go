package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/shenikar/drought_response_system/internal/recordstore"
)

type FetchErrorKind int

const (
	// FetchUnreachable - не загрузилась ни одна коллекция, и все по причине недоступности
	FetchUnreachable FetchErrorKind = iota + 1
	// FetchPartialCollectionFailure - часть коллекций не загрузилась либо хранилище ответило ошибкой
	FetchPartialCollectionFailure
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchUnreachable:
		return "unreachable"
	case FetchPartialCollectionFailure:
		return "partial collection failure"
	}
	return "unknown"
}

// FetchError возвращается операциями чтения коллекций из хранилища
type FetchError struct {
	Kind   FetchErrorKind
	Failed []models.Kind
	Err    error
}

func (e *FetchError) Error() string {
	failed := make([]string, len(e.Failed))
	for i, k := range e.Failed {
		failed[i] = k.String()
	}
	return fmt.Sprintf("fetch failed (%s) for [%s]: %v", e.Kind, strings.Join(failed, ", "), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type WriteErrorKind int

const (
	WriteRejected WriteErrorKind = iota + 1
	WriteNotFound
	WriteUnreachable
)

func (k WriteErrorKind) String() string {
	switch k {
	case WriteRejected:
		return "rejected"
	case WriteNotFound:
		return "not found"
	case WriteUnreachable:
		return "unreachable"
	}
	return "unknown"
}

// WriteError возвращается мутирующими операциями кэша
type WriteError struct {
	Kind WriteErrorKind
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: write %s: %v", e.Op, e.Kind, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

type AuthErrorKind int

const (
	AuthInvalidCredentials AuthErrorKind = iota + 1
	// AuthUnavailable - проверка учетных данных не состоялась (сеть, таймаут)
	AuthUnavailable
)

// AuthError возвращается Authenticate вместо паники или голой ошибки транспорта
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

func (e *AuthError) Error() string {
	if e.Kind == AuthInvalidCredentials {
		return "authentication failed: invalid credentials"
	}
	return fmt.Sprintf("authentication unavailable: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// IsWriteKind сообщает, является ли err ошибкой записи указанного вида
func IsWriteKind(err error, kind WriteErrorKind) bool {
	var writeErr *WriteError
	return errors.As(err, &writeErr) && writeErr.Kind == kind
}

func isUnreachable(err error) bool {
	return errors.Is(err, recordstore.ErrUnreachable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

func newWriteError(op string, err error) *WriteError {
	kind := WriteRejected
	switch {
	case isUnreachable(err):
		kind = WriteUnreachable
	case errors.Is(err, recordstore.ErrNotFound):
		kind = WriteNotFound
	}
	return &WriteError{Kind: kind, Op: op, Err: err}
}

// newFetchError сводит ошибки отдельных коллекций в одну FetchError
func newFetchError(failed []models.Kind, errs []error, total int) *FetchError {
	kind := FetchUnreachable
	if len(failed) < total {
		kind = FetchPartialCollectionFailure
	}
	for _, err := range errs {
		if !isUnreachable(err) {
			kind = FetchPartialCollectionFailure
			break
		}
	}
	return &FetchError{Kind: kind, Failed: failed, Err: errors.Join(errs...)}
}
