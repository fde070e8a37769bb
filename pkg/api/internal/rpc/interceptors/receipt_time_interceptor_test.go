package interceptors_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	. "github.com/campusfm/projectperm/pkg/api/internal/rpc/interceptors"
	"github.com/campusfm/projectperm/pkg/contextx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
)

var _ = Describe("ReceiptTimeInterceptor", func() {
	var (
		now     time.Time
		subject grpc.UnaryServerInterceptor
	)

	BeforeEach(func() {
		now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
		subject = ReceiptTimeInterceptor(fakeclock.NewFakeClock(now))
	})

	testUnaryServerInterceptor(func() grpc.UnaryServerInterceptor { return subject })

	It("stores the receipt time in the context", func() {
		var receivedAt time.Time
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			receivedAt, _ = contextx.ReceiptTimeFromContext(ctx)
			return nil, nil
		}

		_, err := subject(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
		Expect(err).NotTo(HaveOccurred())
		Expect(receivedAt).To(Equal(now))
	})
})
