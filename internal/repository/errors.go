package repository

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or is not visible to the caller
	ErrNotFound = errors.New("record not found")

	// ErrCacheMiss is returned by CacheRepository.Get for absent or expired keys
	ErrCacheMiss = errors.New("cache miss")

	// ErrSeal is returned when a scenario payload cannot be encrypted or decrypted
	ErrSeal = errors.New("scenario payload seal failed")
)
