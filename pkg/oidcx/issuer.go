package oidcx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	OpenIDConfigurationEndpoint = "/.well-known/openid-configuration"
)

type ProviderConfiguration struct {
	Issuer string `json:"issuer"`
}

func GetIssuer(ctx context.Context, client *http.Client, providerURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, providerURL+OpenIDConfigurationEndpoint, nil)
	if err != nil {
		return "", err
	}

	res, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP bad response: %s", res.Status)
	}

	var configuration ProviderConfiguration
	if err = json.NewDecoder(res.Body).Decode(&configuration); err != nil {
		return "", err
	}

	return configuration.Issuer, nil
}
