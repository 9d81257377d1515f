package session

import "errors"

var (
	ErrTokenNotFound  = errors.New("token not found")
	ErrLightNotFound  = errors.New("light not found")
	ErrPortalNotFound = errors.New("portal not found")
	ErrNoVision       = errors.New("token has no vision profile")
)
