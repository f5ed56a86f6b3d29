package service

import "errors"

var (
	ErrValidationEmptyName  = errors.New("contact name must not be blank")
	ErrValidationEmptyValue = errors.New("value must not be blank")
)
