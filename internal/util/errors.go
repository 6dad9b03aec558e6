package util

import "errors"

// 错误类别，HandleError 依据类别决定状态码
var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)

// DomainError 带有类别的业务错误，Error() 只返回面向调用方的消息
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

var (
	ErrRelationshipTypeNotFound  = newError(ErrNotFound, "relationship type not found")
	ErrReverseTypeNotFound       = newError(ErrNotFound, "reverse type not found")
	ErrRelationshipNotFound      = newError(ErrNotFound, "relationship not found")
	ErrRelationshipTypeNameTaken = newError(ErrConflict, "relationship type name already exists")
	ErrRelationshipTypeInUse     = newError(ErrConflict, "relationship type is referenced by existing relationships")
	ErrRelationshipExists        = newError(ErrConflict, "relationship already exists between users")
	ErrSelfRelationship          = newError(ErrInvalidArgument, "cannot create relationship between same user")
	ErrSelfReverseType           = newError(ErrInvalidArgument, "relationship type cannot be its own reverse")
	ErrInvalidCategory           = newError(ErrInvalidArgument, "category must be one of: FAMILY, SOCIAL, PROFESSIONAL, CUSTOM")
	ErrInvalidStatus             = newError(ErrInvalidArgument, "status must be one of: ACTIVE, ENDED, SUSPENDED, PENDING")
	ErrInvalidDateRange          = newError(ErrInvalidArgument, "end date must not be before start date")
	ErrInvalidName               = newError(ErrInvalidArgument, "name is required and must not exceed 100 characters")
	ErrInvalidContextID          = newError(ErrInvalidArgument, "contextId must be a positive integer")
)
