package employee

import "errors"

var (
	ErrProfileNotFound = errors.New("employee profile not found")
	ErrManagerNotFound = errors.New("manager not found")
	ErrManagerCycle    = errors.New("manager assignment would create a reporting cycle")
)
