package maps

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrAddressNotFound     = errors.New("no address found in message")
	ErrNoRouteFound        = errors.New("no routes found to any bike sharing station")
	ErrNoReachableStations = errors.New("no bike sharing station is reachable by foot")
	ErrRouteUnavailable    = errors.New("no detailed route available")
	ErrTooManyResults      = errors.New("too many results to label")
)
