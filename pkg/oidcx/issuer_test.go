package oidcx_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campusfm/projectperm/pkg/oidcx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("GetIssuer", func() {
	var (
		server      *ghttp.Server
		providerURL string
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		providerURL = fmt.Sprintf("%s/oauth/token", server.URL())
	})

	AfterEach(func() {
		server.Close()
	})

	It("fetches the issuer from .well-known/openid-configuration", func() {
		server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/oauth/token/.well-known/openid-configuration"),
				ghttp.RespondWith(200, `{"issuer": "https://uaa.campus.edu/oauth/token"}`),
			),
		)

		issuer, err := oidcx.GetIssuer(context.Background(), http.DefaultClient, providerURL)
		Expect(err).NotTo(HaveOccurred())
		Expect(issuer).To(Equal("https://uaa.campus.edu/oauth/token"))
	})

	It("returns an error on bad get status", func() {
		server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/oauth/token/.well-known/openid-configuration"),
				ghttp.RespondWith(404, `{"error": "not found"}`),
			),
		)

		_, err := oidcx.GetIssuer(context.Background(), http.DefaultClient, providerURL)
		Expect(err).To(MatchError("HTTP bad response: 404 Not Found"))
	})

	It("returns an error on unparseable endpoint content", func() {
		server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/oauth/token/.well-known/openid-configuration"),
				ghttp.RespondWith(200, `{"issuer": "foo....`),
			),
		)

		_, err := oidcx.GetIssuer(context.Background(), http.DefaultClient, providerURL)
		Expect(err).To(MatchError("unexpected EOF"))
	})
})
