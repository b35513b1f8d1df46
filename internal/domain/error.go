package domain

import "errors"

var (
	// ErrInvalidABI means an ABI document could not be parsed or contains an unknown entry kind.
	ErrInvalidABI = errors.New("invalid ABI")

	// ErrUnsupportedType means an ABI parameter type has no Go representation.
	ErrUnsupportedType = errors.New("unsupported ABI type")

	// ErrNameCollision means two generated declarations ended up with the same Go identifier.
	ErrNameCollision = errors.New("generated name collision")

	// ErrInvalidManifest means the generator manifest is missing required fields.
	ErrInvalidManifest = errors.New("invalid generator manifest")
)
