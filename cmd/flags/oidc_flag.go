package flags

import (
	"context"
	"net/http"
	"time"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/oidcx"
)

type OIDCFlag struct {
	ProviderURL string `long:"provider-url" description:"URL of the OIDC provider; calls are unauthenticated without one"`
	ClientID    string `long:"client-id" description:"Audience ID tokens must be issued for" default:"projectperm"`
}

func (f OIDCFlag) Enabled() bool {
	return f.ProviderURL != ""
}

func (f OIDCFlag) Provider(ctx context.Context, logger logx.Logger) (oidcx.Provider, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	provider, err := oidcx.NewProvider(ctx, client, f.ProviderURL)
	if err != nil {
		logger.Error(failedToCreateOIDCProvider, err, logx.Data{Key: "provider_url", Value: f.ProviderURL})
		return nil, err
	}

	return provider, nil
}
