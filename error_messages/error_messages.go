package error_messages

import "errors"

var (
	ErrNotExists    = errors.New("row not exists")
	ErrUpdateFailed = errors.New("update failed")
	ErrDeleteFailed = errors.New("delete failed")

	ErrEmptyCart       = errors.New("no items in cart")
	ErrInvalidItem     = errors.New("invalid cart item")
	ErrCartTooLarge    = errors.New("too many items in cart")
	ErrMissingCustomer = errors.New("missing required customer fields")

	ErrSessionFailed = errors.New("failed to create checkout session")
	ErrIntentFailed  = errors.New("failed to create payment intent")
	ErrFlowState     = errors.New("invalid payment flow transition")

	ErrUnknownStory = errors.New("unknown story")
	ErrUnknownGrade = errors.New("unsupported grade")
)
