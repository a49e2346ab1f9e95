package plugin

import "errors"

var (
	ErrAlreadyExists   = errors.New("plugin of this kind already attached")
	ErrUnsupportedKind = errors.New("unsupported plugin kind")
	ErrNotFound        = errors.New("plugin not found")
	ErrProvisionFailed = errors.New("plugin provisioning failed")
	ErrNoCapacity      = errors.New("no managed capacity available")
)
