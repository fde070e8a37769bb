package flags

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
)

var ErrFailedToAppendCertToPool = errors.New("failed to append certs from pem")

// CertPool builds a pool from PEM certificates given as files or inline.
func CertPool(certs ...FileOrString) (*x509.CertPool, error) {
	pool := x509.NewCertPool()

	for _, cert := range certs {
		b, err := cert.Bytes()
		if err != nil {
			return nil, err
		}

		if ok := pool.AppendCertsFromPEM(b); !ok {
			return nil, ErrFailedToAppendCertToPool
		}
	}

	return pool, nil
}

type ServerTLSFlag struct {
	Certificate string `long:"certificate" description:"File path of TLS certificate; the server listens in plaintext without one"`
	Key         string `long:"key" description:"File path of TLS private key"`
}

func (f ServerTLSFlag) Enabled() bool {
	return f.Certificate != "" || f.Key != ""
}

func (f ServerTLSFlag) Config() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(f.Certificate, f.Key)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
