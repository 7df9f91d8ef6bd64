package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/anypb"
)

type Error struct {
	code       ERR
	message    string
	wrappedErr error
}

type Interface interface {
	Error() string
	Is(target error) bool
	As(target interface{}) bool
	Unwrap() error

	Code() ERR
	Message() string
	WrappedErr() error
}

func (e *Error) Error() string {
	// Error() can be called on wrapped errors, which can be nil, for example predefined errors
	if e == nil {
		return "<nil>"
	}

	if e.wrappedErr == nil {
		return fmt.Sprintf("Error: %s (error code: %d), Message: %v", e.code.String(), e.code, e.message)
	}

	return fmt.Sprintf("Error: %s (error code: %d), Message: %v, Wrapped err: %v", e.code.String(), e.code, e.message, e.wrappedErr)
}

// Is reports whether error codes match anywhere in the chain.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}

	targetError, ok := target.(*Error)
	if !ok {
		return strings.Contains(e.Error(), target.Error())
	}

	if e.code == targetError.code {
		return true
	}

	if e.wrappedErr == nil {
		return false
	}

	if ue, ok := e.wrappedErr.(*Error); ok {
		return ue.Is(target)
	}

	return false
}

func (e *Error) As(target interface{}) bool {
	if e == nil {
		return false
	}

	if targetErr, ok := target.(**Error); ok {
		*targetErr = e
		return true
	}

	if e.wrappedErr != nil {
		// a typed nil stored in the interface would panic inside errors.As
		if v := reflect.ValueOf(e.wrappedErr); v.Kind() == reflect.Ptr && v.IsNil() {
			return false
		}

		return errors.As(e.wrappedErr, target)
	}

	return false
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.wrappedErr
}

func (e *Error) Code() ERR {
	if e == nil {
		return ERR_UNKNOWN
	}

	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

func (e *Error) WrappedErr() error {
	if e == nil {
		return nil
	}

	return e.wrappedErr
}

// New creates an *Error. When the last param is an error it is wrapped,
// the remaining params are used to format the message.
func New(code ERR, message string, params ...interface{}) *Error {
	var wErr error

	if len(params) > 0 {
		lastParam := params[len(params)-1]

		switch err := lastParam.(type) {
		case *Error:
			wErr = err
			params = params[:len(params)-1]
		case error:
			wErr = &Error{code: ERR_ERROR, message: err.Error()}
			params = params[:len(params)-1]
		}
	}

	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}

	if _, ok := ERR_name[int32(code)]; !ok {
		return &Error{
			code:       code,
			message:    "invalid error code",
			wrappedErr: wErr,
		}
	}

	return &Error{
		code:       code,
		message:    message,
		wrappedErr: wErr,
	}
}

// WrapGRPC converts an error into a gRPC status carrying one TError detail per
// link of the *Error chain.
func WrapGRPC(err error) error {
	if err == nil {
		return nil
	}

	castedErr, ok := err.(*Error)
	if !ok {
		castedErr = &Error{code: ERR_ERROR, message: err.Error()}
	}

	details := make([]protoadapt.MessageV1, 0, 2)

	var curr error = castedErr

	for curr != nil {
		tErr, ok := curr.(*Error)
		if !ok {
			tErr = &Error{code: ERR_ERROR, message: curr.Error()}
		}

		detail, pbErr := anypb.New(&TError{
			Code:    tErr.code,
			Message: tErr.message,
		})
		if pbErr != nil {
			return New(ERR_ERROR, "error serializing TError to protobuf Any", err)
		}

		details = append(details, detail)

		if !ok {
			break
		}

		curr = tErr.wrappedErr
	}

	st, detailsErr := status.New(ErrorCodeToGRPCCode(castedErr.code), castedErr.message).WithDetails(details...)
	if detailsErr != nil {
		return New(ERR_ERROR, "error adding details to the error's gRPC status", err)
	}

	return st.Err()
}

// UnwrapGRPC rebuilds an *Error from a gRPC status error. Statuses produced by
// WrapGRPC keep their full chain, bare statuses from foreign servers are mapped
// by their gRPC code and keep the status message.
func UnwrapGRPC(err error) *Error {
	if err == nil {
		return nil
	}

	if castedErr, ok := err.(*Error); ok {
		return castedErr
	}

	st, ok := status.FromError(err)
	if !ok {
		return &Error{
			code:       ERR_ERROR,
			message:    "error unwrapping gRPC details",
			wrappedErr: err,
		}
	}

	var prevErr, currErr *Error

	for i := len(st.Details()) - 1; i >= 0; i-- {
		detailAny, ok := st.Details()[i].(*anypb.Any)
		if !ok {
			continue
		}

		var customDetails TError
		if err := anypb.UnmarshalTo(detailAny, &customDetails, proto.UnmarshalOptions{}); err == nil {
			currErr = New(customDetails.Code, customDetails.Message)

			if prevErr != nil {
				currErr.wrappedErr = prevErr
			}

			prevErr = currErr
		}
	}

	if currErr != nil {
		return currErr
	}

	return &Error{
		code:    GRPCCodeToErrorCode(st.Code()),
		message: st.Message(),
	}
}

// ErrorCodeToGRPCCode maps application error codes to gRPC status codes.
func ErrorCodeToGRPCCode(code ERR) codes.Code {
	switch code {
	case ERR_UNKNOWN:
		return codes.Unknown
	case ERR_INVALID_ARGUMENT, ERR_MALFORMED_HEX, ERR_MALFORMED_OUTPOINT, ERR_INVALID_ADDRESS:
		return codes.InvalidArgument
	case ERR_THRESHOLD_EXCEEDED:
		return codes.ResourceExhausted
	case ERR_NOT_FOUND:
		return codes.NotFound
	case ERR_CONTEXT_CANCELED:
		return codes.Canceled
	case ERR_SERVICE_UNAVAILABLE, ERR_SERVICE_NOT_STARTED:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// GRPCCodeToErrorCode is the inverse of ErrorCodeToGRPCCode for statuses that
// carry no TError details.
func GRPCCodeToErrorCode(code codes.Code) ERR {
	switch code {
	case codes.InvalidArgument:
		return ERR_INVALID_ARGUMENT
	case codes.NotFound:
		return ERR_NOT_FOUND
	case codes.ResourceExhausted:
		return ERR_THRESHOLD_EXCEEDED
	case codes.Canceled:
		return ERR_CONTEXT_CANCELED
	case codes.DeadlineExceeded:
		return ERR_CONTEXT
	case codes.Unavailable:
		return ERR_SERVICE_UNAVAILABLE
	case codes.Unknown:
		return ERR_UNKNOWN
	default:
		return ERR_ERROR
	}
}

func Join(errs ...error) error {
	var messages []string

	for _, err := range errs {
		if err != nil {
			messages = append(messages, err.Error())
		}
	}

	if len(messages) == 0 {
		return nil
	}

	return errors.New(strings.Join(messages, ", "))
}

func Is(err, target error) bool {
	if isGRPCWrappedError(err) {
		err = UnwrapGRPC(err)
	}

	return errors.Is(err, target)
}

func As(err error, target any) bool {
	if isGRPCWrappedError(err) {
		err = UnwrapGRPC(err)
	}

	if castedErr, ok := err.(*Error); ok {
		if castedErr.As(target) {
			return true
		}
	}

	return errors.As(err, target)
}

func isGRPCWrappedError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(*Error); ok {
		return false
	}

	_, ok := status.FromError(err)

	return ok
}
