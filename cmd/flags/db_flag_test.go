package flags_test

import (
	"context"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/campusfm/projectperm/cmd/flags"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
)

var _ = Describe("DBFlag", func() {
	var (
		ctx    context.Context
		logger logx.Logger

		flag *flags.DBFlag
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("flags"))

		flag = &flags.DBFlag{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     1234,
			Schema:   "projectperm",
			Username: "projectperm-user",
			Password: "projectperm-password",
		}
	})

	Describe("an in-memory connection", func() {
		It("does not require all DB arguments", func() {
			memFlag := &flags.DBFlag{
				Driver: "in-memory",
			}

			Expect(memFlag.IsInMemory()).To(BeTrue())

			_, err := memFlag.Connect(ctx, logger)
			Expect(err).To(MatchError("Connect() unsupported for in-memory driver"))
		})
	})

	Describe("a connection to a real database", func() {
		It("requires a host", func() {
			flag.Host = ""

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError("the required host parameter was not specified; see --help"))
		})

		It("requires a port", func() {
			flag.Port = 0

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError("the required port parameter was not specified; see --help"))
		})

		It("requires a schema", func() {
			flag.Schema = ""

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError("the required schema parameter was not specified; see --help"))
		})

		It("requires a username", func() {
			flag.Username = ""

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError("the required username parameter was not specified; see --help"))
		})

		It("fails on an unparseable root CA", func() {
			flag.TLS.RootCAs = []flags.FileOrString{"not a certificate"}

			_, err := flag.Connect(ctx, logger)
			Expect(err).To(MatchError(flags.ErrFailedToAppendCertToPool))
		})
	})
})
