package flags_test

import (
	"os"
	"path/filepath"

	"github.com/campusfm/projectperm/cmd/flags"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileOrString", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "flags")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("returns the file contents if readable", func() {
		path := filepath.Join(dir, "cert.pem")
		Expect(os.WriteFile(path, []byte("file contents"), 0600)).To(Succeed())

		b, err := flags.FileOrString(path).Bytes()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal("file contents"))
	})

	It("returns the string if provided a string", func() {
		b, err := flags.FileOrString("some string").Bytes()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal("some string"))
	})

	It("decodes the newlines if passed a string", func() {
		b, err := flags.FileOrString("some\\nstring").Bytes()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal("some\nstring"))
	})

	It("fails on a directory", func() {
		_, err := flags.FileOrString(dir).Bytes()
		Expect(err).To(MatchError(ContainSubstring("is a directory, not a file")))
	})
})
