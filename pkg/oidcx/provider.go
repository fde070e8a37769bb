package oidcx

import (
	"context"
	"net/http"

	oidc "github.com/coreos/go-oidc"
)

//go:generate counterfeiter . Provider

type Provider interface {
	Verifier(config *oidc.Config) *oidc.IDTokenVerifier
}

// NewProvider discovers the issuer advertised at providerURL and builds a
// provider for it. The two differ when the token endpoint is served below
// the issuer's path.
func NewProvider(ctx context.Context, client *http.Client, providerURL string) (*oidc.Provider, error) {
	issuer, err := GetIssuer(ctx, client, providerURL)
	if err != nil {
		return nil, err
	}

	return oidc.NewProvider(oidc.ClientContext(ctx, client), issuer)
}
