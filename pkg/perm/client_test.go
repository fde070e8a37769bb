package perm_test

import (
	"errors"

	. "github.com/campusfm/projectperm/pkg/perm"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Client", func() {
	Describe("#Dial", func() {
		It("succeeds when TLS config is supplied", func() {
			server := ghttp.NewTLSServer()
			defer server.Close()

			client, err := Dial(server.Addr(), WithTLSConfig(server.HTTPTestServer.TLS))
			Expect(err).NotTo(HaveOccurred())

			Expect(client).NotTo(BeNil())
		})

		It("succeeds when transport security is explicitly disabled", func() {
			server := ghttp.NewServer()
			defer server.Close()

			client, err := Dial(server.Addr(), WithInsecure(), WithToken("some-token"))
			Expect(err).NotTo(HaveOccurred())

			Expect(client).NotTo(BeNil())
		})

		It("fails when no transport security is supplied", func() {
			server := ghttp.NewTLSServer()
			defer server.Close()

			_, err := Dial(server.Addr())

			Expect(err).To(MatchError("perm: no transport security set (use perm.WithTLSConfig() or perm.WithInsecure() to set)"))
		})
	})

	Describe("#Close", func() {
		It("succeeds on the first call only", func() {
			server := ghttp.NewTLSServer()
			defer server.Close()

			client, err := Dial(server.Addr(), WithTLSConfig(server.HTTPTestServer.TLS))
			Expect(err).NotTo(HaveOccurred())

			err = client.Close()
			Expect(err).NotTo(HaveOccurred())

			err = client.Close()
			Expect(err).To(MatchError("perm: the client connection is already closing or closed"))
		})
	})
})

var _ = Describe("Errors", func() {
	It("recognises persistence failures through wrapping", func() {
		err := NewErrPersistenceFailed(errors.New("disk full"))

		Expect(IsPersistenceFailure(err)).To(BeTrue())
		Expect(IsPersistenceFailure(errors.New("other"))).To(BeFalse())
		Expect(errors.Unwrap(err)).To(MatchError("disk full"))
	})

	It("describes empty fields", func() {
		Expect(ErrStaffEmailEmpty).To(MatchError("staff email cannot be empty"))
		Expect(ErrAssignmentNotFound).To(MatchError("assignment not found"))
	})

	It("carries the server explanation for invalid requests", func() {
		Expect(NewErrInvalidRequest("staffEmail is required")).To(MatchError("invalid request: staffEmail is required"))
	})
})
