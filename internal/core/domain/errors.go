package domain

import "errors"

// ErrInvalidCategory is an error thrown when a category is not one of the known values
var ErrInvalidCategory = errors.New("invalid category")

// ErrMissingFile is an error thrown when an upload carries no file bytes
var ErrMissingFile = errors.New("missing file")

// ErrMediaNotFound is an error thrown when a media item is not found
var ErrMediaNotFound = errors.New("media item not found")

// ErrMissingImageURL is an error thrown when a media item has no image URL
var ErrMissingImageURL = errors.New("missing image url")

// ErrInvalidDescription is an error thrown when a description update payload is invalid
var ErrInvalidDescription = errors.New("invalid description")

// ErrInvalidCredentials is an error thrown when the admin password does not match
var ErrInvalidCredentials = errors.New("invalid credentials")
