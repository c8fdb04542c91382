package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrMemberExists    = errors.New("employee is already a member of this project")
	ErrMemberNotFound  = errors.New("project member not found")
)
