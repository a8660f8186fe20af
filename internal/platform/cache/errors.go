package cache

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrMarshal     = errors.New("failed to marshal value to json")
	ErrUnmarshal   = errors.New("failed to unmarshal value from json")
)
