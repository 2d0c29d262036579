package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Business-rule failures surfaced to clients. All terminal; nothing here
// is retried automatically.
var (
	ErrNoOpenRegister      = errors.New("no cash register is open")
	ErrRegisterAlreadyOpen = errors.New("a cash register is already open")
	ErrTabClosed           = errors.New("tab is already closed")
	ErrEmptyTab            = errors.New("tab has no items")
	ErrInsufficientCash    = errors.New("cash received is less than the amount due")
	ErrNothingSelected     = errors.New("no items selected for payment")
	ErrInvalidSplit        = errors.New("split quantity exceeds item quantity")
	ErrPartialSale         = errors.New("partial sales cannot be cancelled")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRegisterAlreadyOpen), errors.Is(err, ErrTabClosed):
		return http.StatusConflict
	case errors.Is(err, ErrNoOpenRegister), errors.Is(err, ErrEmptyTab),
		errors.Is(err, ErrInsufficientCash), errors.Is(err, ErrNothingSelected),
		errors.Is(err, ErrInvalidSplit), errors.Is(err, ErrPartialSale):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
