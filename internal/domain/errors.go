package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount below withdrawal minimum")
	ErrNoAccountNumber     = errors.New("no account number on file")
	ErrNotEnoughInvites    = errors.New("not enough invited users")
	ErrTaskLimitReached    = errors.New("task completion limit reached")
	ErrBonusCooldown       = errors.New("bonus cooldown active")
)
