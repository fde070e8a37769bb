package interceptors

import (
	"context"

	"github.com/campusfm/projectperm/pkg/contextx"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/oidcx"
	oidc "github.com/coreos/go-oidc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	AuthFailSignature = "AuthFail"
	AuthPassSignature = "AuthPass"

	// TokenMetadataKey carries the caller's ID token.
	TokenMetadataKey = "token"
)

func OIDCInterceptor(provider oidcx.Provider, clientID string, securityLogger logx.SecurityLogger) grpc.UnaryServerInterceptor {
	verifier := provider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			securityLogger.Log(ctx, AuthFailSignature, "missing token", logx.SecurityData{Key: "msg", Value: "no metadata"})
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		token, ok := md[TokenMetadataKey]
		if !ok || len(token) == 0 {
			securityLogger.Log(ctx, AuthFailSignature, "missing token", logx.SecurityData{Key: "msg", Value: "no token"})
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		idToken, err := verifier.Verify(ctx, token[0])
		if err != nil {
			securityLogger.Log(ctx, AuthFailSignature, "invalid token", logx.SecurityData{Key: "msg", Value: err.Error()})
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		securityLogger.Log(ctx, AuthPassSignature, "auth succeeded",
			logx.SecurityData{Key: "msg", Value: "auth succeeded"},
			logx.SecurityData{Key: "subject", Value: idToken.Subject},
		)

		return handler(contextx.WithSubject(ctx, idToken.Subject), req)
	}
}
