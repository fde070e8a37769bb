package flags_test

import (
	"github.com/campusfm/projectperm/cmd/flags"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LagerFlag", func() {
	It("builds a logger for every supported level", func() {
		for _, level := range []flags.LogLevel{"", "debug", "info", "error", "fatal"} {
			Expect(flags.LagerFlag{LogLevel: level}.Logger("projectperm")).NotTo(BeNil())
		}
	})

	It("panics on an unknown level", func() {
		Expect(func() { flags.LagerFlag{LogLevel: "verbose"}.Logger("projectperm") }).To(Panic())
	})
})
