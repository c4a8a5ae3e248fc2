package models

import "errors"

var ErrNotFound = errors.New("record not found")
