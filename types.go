package bloomset

import (
	"errors"
	"fmt"
)

const (
	// Magic tags the serialized filter format.
	Magic = "BLMF"

	// Version is the serialized format version this package reads and writes.
	Version uint8 = 1

	// HeaderBytes is the fixed serialized header size:
	// magic (4) + version (1) + numBits (8) + numHashes (8).
	HeaderBytes = 21
)

// The two error kinds. Every sentinel below wraps one of these, so callers
// can match either the precise condition or the kind with errors.Is.
var (
	ErrInvalidParameter = errors.New("bloomset: invalid parameter")
	ErrCorruptData      = errors.New("bloomset: corrupt data")
)

var (
	ErrBadNumBits       = fmt.Errorf("%w: numBits must be positive", ErrInvalidParameter)
	ErrBadNumHashes     = fmt.Errorf("%w: numHashes must be positive", ErrInvalidParameter)
	ErrBadExpectedItems = fmt.Errorf("%w: expectedItems must be positive", ErrInvalidParameter)
	ErrBadTargetRate    = fmt.Errorf("%w: targetFalsePositive must be in (0,1)", ErrInvalidParameter)

	ErrBadMagic       = fmt.Errorf("%w: magic invalid", ErrCorruptData)
	ErrBadVersion     = fmt.Errorf("%w: version unsupported", ErrCorruptData)
	ErrBadPayloadSize = fmt.Errorf("%w: payload length mismatch", ErrCorruptData)
)
