package ir

import "errors"

var (
	ErrLeafChild = errors.New("leaf nodes cannot hold children")
)
