package session

import "errors"

var ErrEmptyUser = errors.New("scope has no user id")
