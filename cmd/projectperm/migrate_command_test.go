package main

import (
	"github.com/campusfm/projectperm/cmd/flags"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("projectperm migrate", func() {
	var cmd MigrateCommand

	BeforeEach(func() {
		cmd = MigrateCommand{
			Logger: flags.LagerFlag{LogLevel: "fatal"},
		}
	})

	It("performs a no-op migration for the in-memory driver", func() {
		cmd.DB = flags.DBFlag{Driver: flags.DBDriverInMemory}

		Expect(cmd.Execute(nil)).To(Succeed())
	})

	It("performs a no-op rollback for the in-memory driver", func() {
		cmd.DB = flags.DBFlag{Driver: flags.DBDriverInMemory}
		cmd.Rollback = true

		Expect(cmd.Execute(nil)).To(Succeed())
	})

	It("errors out on an unsupported driver", func() {
		cmd.DB = flags.DBFlag{
			Driver:   "unsupported-driver",
			Host:     "host",
			Port:     2313,
			Schema:   "projectperm",
			Username: "projectperm",
			Password: "projectperm",
		}

		Expect(cmd.Execute(nil)).To(MatchError("unsupported sql driver"))
	})

	It("errors out when the connection is incomplete", func() {
		cmd.DB = flags.DBFlag{Driver: "mysql"}

		Expect(cmd.Execute(nil)).To(MatchError(ContainSubstring("host")))
	})
})
