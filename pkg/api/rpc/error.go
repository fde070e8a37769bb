package rpc

import (
	"errors"

	"github.com/campusfm/projectperm/pkg/perm"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func togRPCError(err error) error {
	var (
		notFound      perm.ErrNotFound
		cannotBeEmpty perm.ErrCannotBeEmpty
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &cannotBeEmpty):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}
