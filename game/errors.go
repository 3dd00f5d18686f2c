package game

import "errors"

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrPromotionPending   = errors.New("promotion pending")
	ErrNoPromotionPending = errors.New("no promotion pending")
	ErrInvalidPromotion   = errors.New("invalid promotion piece")
)
