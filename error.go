package pagecache

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [NewLFU] and [NewOptimal].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func capacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=0 but %d was requested",
		ErrInvalidCapacity, capacity)
}
