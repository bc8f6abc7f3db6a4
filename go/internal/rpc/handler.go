package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/stats"
)

// Procedure builds a Connect procedure path such as /league.v1.TeamService/GetTeam.
func Procedure(service, method string) string {
	return "/league.v1." + service + "/" + method
}

// Mux collects unary handlers for registration on an http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Unary registers fn as a unary Connect handler on mux.
func Unary[Req, Res any](mux Mux, procedure string, fn func(context.Context, *Req) (*Res, error), opts ...connect.HandlerOption) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	mux.Handle(procedure, connect.NewUnaryHandler(
		procedure,
		func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
			res, err := fn(ctx, req.Msg)
			if err != nil {
				return nil, Error(err)
			}
			return connect.NewResponse(res), nil
		},
		opts...,
	))
}

// Error maps an app error onto a Connect error code.
func Error(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}
	return connect.NewError(Code(err), err)
}

// Code picks the Connect code for err.
func Code(err error) connect.Code {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, stats.ErrInvalidMatch):
		return connect.CodeInvalidArgument
	case errors.Is(err, models.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, models.ErrConflict):
		return connect.CodeFailedPrecondition
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	default:
		return connect.CodeInternal
	}
}

// InvalidArgument wraps a request decoding problem, e.g. a malformed id.
func InvalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// ParseID parses a required UUID request field.
func ParseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, InvalidArgument(fmt.Errorf("invalid %s %q: %w", field, value, err))
	}
	return id, nil
}

// ParseOptionalID parses a UUID request field that may be empty.
func ParseOptionalID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := ParseID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
