package snapshot_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
	"github.com/campusfm/projectperm/pkg/perm"
	. "github.com/campusfm/projectperm/pkg/snapshot"
	"github.com/campusfm/projectperm/pkg/snapshot/snapshotfakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Snapshotter", func() {
	var (
		ctx        context.Context
		testLogger *lagertest.TestLogger
		logger     logx.Logger

		entries []Entry
	)

	BeforeEach(func() {
		ctx = context.Background()
		testLogger = lagertest.NewTestLogger("snapshot")
		logger = lagerx.NewLogger(testLogger)

		assignedDate := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
		entries = []Entry{
			{
				ProjectID: "proj-1",
				Assignments: []perm.Assignment{
					{
						ProjectID:    "proj-1",
						ProjectTitle: "Library Roof Repair",
						StaffEmail:   "staff@x.edu",
						StaffName:    "Sam Staff",
						Role:         "Staff",
						AssignedBy:   "admin@x.edu",
						AssignedDate: assignedDate,
						Permissions:  perm.AssignmentPermissions{CanEdit: true, CanViewDocuments: true},
					},
				},
			},
			{
				ProjectID:   "proj-2",
				Assignments: []perm.Assignment{},
			},
		}
	})

	Describe("Entry", func() {
		It("encodes as a [projectId, assignments] pair", func() {
			data, err := json.Marshal(Entry{ProjectID: "proj-9"})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`["proj-9",[]]`))
		})

		It("rejects anything other than a pair", func() {
			var e Entry
			Expect(json.Unmarshal([]byte(`["proj-9"]`), &e)).To(MatchError(ContainSubstring("expected 2 elements")))
		})
	})

	Context("with memory storage", func() {
		var (
			storage *MemoryStorage
			subject *Snapshotter
		)

		BeforeEach(func() {
			storage = NewMemoryStorage()
			subject = NewSnapshotter(storage, "")
		})

		It("uses the default key", func() {
			Expect(subject.Key()).To(Equal(DefaultKey))
		})

		It("round trips entries", func() {
			Expect(subject.Save(ctx, logger, entries)).To(Succeed())

			loaded, ok, err := subject.Load(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(loaded).To(Equal(entries))
		})

		It("writes the pair list layout", func() {
			Expect(subject.Save(ctx, logger, entries[1:])).To(Succeed())

			raw, ok, err := storage.Get(ctx, DefaultKey)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(raw).To(Equal(`[["proj-2",[]]]`))
		})

		It("reports a missing key", func() {
			loaded, ok, err := subject.Load(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(loaded).To(BeNil())
		})

		It("returns and logs a decode failure", func() {
			Expect(storage.Set(ctx, DefaultKey, "{not json")).To(Succeed())

			_, ok, err := subject.Load(ctx, logger)
			Expect(err).To(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(testLogger.LogMessages()).To(ContainElement("snapshot.load-snapshot.failed-to-decode-snapshot"))
		})
	})

	Context("when the storage fails", func() {
		var storage *snapshotfakes.FakeStorage

		BeforeEach(func() {
			storage = new(snapshotfakes.FakeStorage)
		})

		It("returns and logs write failures", func() {
			storage.SetReturns(errors.New("quota exceeded"))

			err := NewSnapshotter(storage, "assignments").Save(ctx, logger, entries)
			Expect(err).To(MatchError("quota exceeded"))
			Expect(testLogger.LogMessages()).To(ContainElement("snapshot.save-snapshot.failed-to-write-snapshot"))

			_, key, _ := storage.SetArgsForCall(0)
			Expect(key).To(Equal("assignments"))
		})

		It("returns read failures", func() {
			storage.GetReturns("", false, errors.New("unavailable"))

			_, _, err := NewSnapshotter(storage, "assignments").Load(ctx, logger)
			Expect(err).To(MatchError("unavailable"))
		})
	})
})
