package game

import "errors"

var (
	ErrIndexOutOfRange = errors.New("order index out of range")
	ErrCardNotHeld     = errors.New("card not in hand")
	ErrCardMismatch    = errors.New("card does not grant this order")
)
