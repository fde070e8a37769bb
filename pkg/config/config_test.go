package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/campusfm/projectperm/pkg/config"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/rbac"
	"github.com/campusfm/projectperm/pkg/seed"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "projectperm-config")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.Unsetenv("PROJECTPERM_SEED_POLICY")).To(Succeed())
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	write := func(name, contents string) string {
		path := filepath.Join(dir, name)
		Expect(ioutil.WriteFile(path, []byte(contents), 0600)).To(Succeed())
		return path
	}

	It("falls back to the built-in policy and demo data", func() {
		cfg, err := Load("")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Policy()).To(Equal(rbac.DefaultPolicy()))
		Expect(cfg.SeedPolicy()).To(Equal(seed.PolicyAlways))
		Expect(cfg.SeedAssignments()).To(Equal(seed.DefaultAssignments()))
	})

	It("reads departments, seed policy and assignments from YAML", func() {
		path := write("policy.yml", `
departments:
- name: Facilities
  categories: [repairs]
- name: Grounds
  categories: [maintenance, space-planning]
seed:
  policy: when-empty
  assignments:
  - projectId: proj-7
    staffEmail: staff@x.edu
    staffName: Sam
    permissions:
      canEdit: true
`)

		cfg, err := Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Policy().Departments).To(Equal(map[string][]perm.Category{
			"Facilities": {perm.CategoryRepairs},
			"Grounds":    {perm.CategoryMaintenance, perm.CategorySpacePlanning},
		}))
		Expect(cfg.SeedPolicy()).To(Equal(seed.PolicyWhenEmpty))

		assignments := cfg.SeedAssignments()
		Expect(assignments).To(HaveLen(1))
		Expect(assignments[0].ProjectID).To(Equal("proj-7"))
		Expect(assignments[0].StaffEmail).To(Equal("staff@x.edu"))
		Expect(assignments[0].Permissions.CanEdit).To(BeTrue())
	})

	It("reads JSON files", func() {
		path := write("policy.json", `{"seed": {"policy": "never"}}`)

		cfg, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SeedPolicy()).To(Equal(seed.PolicyNever))
	})

	It("lets the environment override the file", func() {
		path := write("policy.yml", "seed:\n  policy: when-empty\n")
		Expect(os.Setenv("PROJECTPERM_SEED_POLICY", "never")).To(Succeed())

		cfg, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SeedPolicy()).To(Equal(seed.PolicyNever))
	})

	It("loads overrides from a dotenv file", func() {
		envFile := write(".env", "PROJECTPERM_SEED_POLICY=when-empty\n")

		cfg, err := Load("", WithEnvFile(envFile))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SeedPolicy()).To(Equal(seed.PolicyWhenEmpty))
	})

	It("ignores a missing dotenv file", func() {
		_, err := Load("", WithEnvFile(filepath.Join(dir, "missing.env")))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an unknown seed policy", func() {
		path := write("policy.yml", "seed:\n  policy: sometimes\n")

		_, err := Load(path)
		Expect(err).To(MatchError(`unknown seed policy "sometimes"`))
	})

	It("fails when the file does not exist", func() {
		_, err := Load(filepath.Join(dir, "nope.yml"))
		Expect(err).To(HaveOccurred())
	})
})
