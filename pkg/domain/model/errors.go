package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrDataUnavailable = goerr.New("dataset is unavailable")
	ErrUnknownColumn   = goerr.New("required column not found in header")
	ErrUnknownRegion   = goerr.New("region not present in dataset")
)
