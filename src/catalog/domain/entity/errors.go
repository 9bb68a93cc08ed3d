package entity

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCatalogFetch    = errors.New("could not fetch catalog from remote store")
)
