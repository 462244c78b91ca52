package service

import "errors"

var (
	// ErrInvalidSlugFormat slug не соответствует грамматике: 16 символов из [A-Za-z0-9_-]
	ErrInvalidSlugFormat = errors.New("invalid slug format")
	// ErrSlugNotFound slug корректен, но не совпал ни с одним кандидатом в пределах лимита перебора
	ErrSlugNotFound = errors.New("slug not found")
	// ErrEmptyIdentifier пустой идентификатор не кодируется
	ErrEmptyIdentifier = errors.New("empty counselor identifier")
	// ErrEncodingFailure сбой вычисления хеша
	ErrEncodingFailure = errors.New("slug encoding failure")
	// ErrDirectoryUnavailable справочник консультантов не ответил
	ErrDirectoryUnavailable = errors.New("counselor directory unavailable")
)
