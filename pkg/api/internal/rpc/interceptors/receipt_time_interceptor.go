package interceptors

import (
	"context"

	"code.cloudfoundry.org/clock"
	"github.com/campusfm/projectperm/pkg/contextx"
	"google.golang.org/grpc"
)

// ReceiptTimeInterceptor stamps the context with the time the request
// arrived, for the security log.
func ReceiptTimeInterceptor(c clock.Clock) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		return handler(contextx.WithReceiptTime(ctx, c.Now()), req)
	}
}
