package trading

import "errors"

var (
	ErrInvalidParam  = errors.New("the param is invalid")
	ErrQueueMismatch = errors.New("order does not belong to this queue")
)
