package game

import "errors"

var (
	ErrFormat            = errors.New("format error")
	ErrInsufficientCards = errors.New("insufficient cards")
	ErrIllegalState      = errors.New("illegal state")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrIllegalMove       = errors.New("illegal move")
	ErrNotFound          = errors.New("not found")
	ErrInvalidOperation  = errors.New("invalid operation")
)
