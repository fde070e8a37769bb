package rpc_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/campusfm/projectperm/pkg/api/protos"
	"github.com/campusfm/projectperm/pkg/api/repos/inmemory"
	"github.com/campusfm/projectperm/pkg/api/repos/reposfakes"
	. "github.com/campusfm/projectperm/pkg/api/rpc"
	"github.com/campusfm/projectperm/pkg/contextx"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/cef"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
	"github.com/campusfm/projectperm/pkg/logx/logxfakes"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/snapshot"
	"github.com/campusfm/projectperm/pkg/snapshot/snapshotfakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ = Describe("AssignmentServiceServer", func() {
	var (
		subject        *AssignmentServiceServer
		testLogger     *lagertest.TestLogger
		logger         logx.Logger
		securityLogger *logxfakes.FakeSecurityLogger

		store *inmemory.Store

		ctx context.Context
		req *protos.AssignStaffRequest
	)

	BeforeEach(func() {
		testLogger = lagertest.NewTestLogger("rpc-test")
		logger = lagerx.NewLogger(testLogger)
		securityLogger = new(logxfakes.FakeSecurityLogger)
		store = inmemory.NewStore()

		ctx = context.Background()
		subject = NewAssignmentServiceServer(logger, securityLogger, store)

		req = &protos.AssignStaffRequest{
			ProjectID:    "proj-1",
			ProjectTitle: "Roof repair",
			StaffEmail:   "staff@x.edu",
			StaffName:    "Sam",
			Role:         "Technician",
			AssignedBy:   "admin@x.edu",
			Permissions:  protos.AssignmentPermissions{CanEdit: true},
		}
	})

	Describe("#AssignStaff", func() {
		It("stores the assignment", func() {
			res, err := subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Persisted).To(BeTrue())

			assignment, found, err := store.FindAssignment(ctx, logger, "proj-1", "staff@x.edu")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(assignment.AssignedBy).To(Equal("admin@x.edu"))
			Expect(assignment.Permissions).To(Equal(perm.AssignmentPermissions{CanEdit: true}))
		})

		It("logs a security event", func() {
			_, err := subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			Expect(securityLogger.LogCallCount()).To(Equal(1))
			_, signature, _, extensions := securityLogger.LogArgsForCall(0)
			Expect(signature).To(Equal(AssignStaffSignature))
			Expect(extensions).To(ContainElement(logx.SecurityData{Key: "projectId", Value: "proj-1"}))
			Expect(extensions).To(ContainElement(logx.SecurityData{Key: "staffEmail", Value: "staff@x.edu"}))
		})

		It("leaves empty optional fields out of the security event", func() {
			req.Role = ""
			req.AssignedBy = ""

			_, err := subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			_, _, _, extensions := securityLogger.LogArgsForCall(0)
			Expect(extensions).To(ConsistOf(
				logx.SecurityData{Key: "projectId", Value: "proj-1"},
				logx.SecurityData{Key: "staffEmail", Value: "staff@x.edu"},
			))
		})

		It("writes a clean CEF line when optional fields are empty", func() {
			auditLog := gbytes.NewBuffer()
			cefLogger := cef.NewLogger(auditLog, "campusfm", "projectperm", "1", "localhost", 6283, logger)
			subject = NewAssignmentServiceServer(logger, cefLogger, store)

			req.Role = ""
			req.AssignedBy = ""

			_, err := subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			Expect(auditLog).To(gbytes.Say("AssignStaff"))
			Expect(testLogger.LogMessages()).NotTo(ContainElement(ContainSubstring("invalid-cef-custom-extension")))
		})

		It("uses the authenticated subject when assignedBy is empty", func() {
			req.AssignedBy = ""

			_, err := subject.AssignStaff(contextx.WithSubject(ctx, "oidc-admin"), req)
			Expect(err).NotTo(HaveOccurred())

			assignment, _, err := store.FindAssignment(ctx, logger, "proj-1", "staff@x.edu")
			Expect(err).NotTo(HaveOccurred())
			Expect(assignment.AssignedBy).To(Equal("oidc-admin"))
		})

		It("keeps an explicit assignedBy over the subject", func() {
			_, err := subject.AssignStaff(contextx.WithSubject(ctx, "oidc-admin"), req)
			Expect(err).NotTo(HaveOccurred())

			assignment, _, err := store.FindAssignment(ctx, logger, "proj-1", "staff@x.edu")
			Expect(err).NotTo(HaveOccurred())
			Expect(assignment.AssignedBy).To(Equal("admin@x.edu"))
		})

		It("registers its validation translations at construction", func() {
			Expect(func() { NewAssignmentServiceServer(logger, securityLogger, store) }).NotTo(Panic())
		})

		It("rejects a request without a staff member", func() {
			req.StaffEmail = ""

			_, err := subject.AssignStaff(ctx, req)

			s, ok := status.FromError(err)
			Expect(ok).To(BeTrue())
			Expect(s.Code()).To(Equal(codes.InvalidArgument))
			Expect(s.Message()).To(ContainSubstring("staffEmail is required"))
			Expect(securityLogger.LogCallCount()).To(BeZero())
		})

		It("reports every missing field", func() {
			_, err := subject.AssignStaff(ctx, &protos.AssignStaffRequest{})

			s, _ := status.FromError(err)
			Expect(s.Message()).To(ContainSubstring("projectId is required"))
			Expect(s.Message()).To(ContainSubstring("staffEmail is required"))
		})

		Context("when the snapshot cannot be written", func() {
			BeforeEach(func() {
				fakeStorage := new(snapshotfakes.FakeStorage)
				fakeStorage.SetReturns(errors.New("quota exceeded"))
				store = inmemory.NewStore(inmemory.WithSnapshotter(snapshot.NewSnapshotter(fakeStorage, "")))
				subject = NewAssignmentServiceServer(logger, securityLogger, store)
			})

			It("succeeds with persisted false and logs the failure", func() {
				res, err := subject.AssignStaff(ctx, req)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Persisted).To(BeFalse())

				Expect(testLogger.Buffer()).To(gbytes.Say("persistence-failed"))

				res2, err := subject.ListProjectAssignments(ctx, &protos.ListProjectAssignmentsRequest{ProjectID: "proj-1"})
				Expect(err).NotTo(HaveOccurred())
				Expect(res2.Assignments).To(HaveLen(1))
			})
		})

		Context("when the repo fails", func() {
			It("returns an Unknown status", func() {
				fakeRepo := new(reposfakes.FakeAssignmentRepo)
				fakeRepo.AssignStaffReturns(errors.New("db down"))
				subject = NewAssignmentServiceServer(logger, securityLogger, fakeRepo)

				_, err := subject.AssignStaff(ctx, req)

				Expect(status.Code(err)).To(Equal(codes.Unknown))
			})

			It("maps not found errors", func() {
				fakeRepo := new(reposfakes.FakeAssignmentRepo)
				fakeRepo.RemoveStaffReturns(perm.NewErrNotFound("project"))
				subject = NewAssignmentServiceServer(logger, securityLogger, fakeRepo)

				_, err := subject.RemoveStaff(ctx, &protos.RemoveStaffRequest{ProjectID: "proj-1", StaffEmail: "a@x.edu"})

				Expect(status.Code(err)).To(Equal(codes.NotFound))
			})
		})
	})

	Describe("#RemoveStaff", func() {
		It("removes the assignment and logs a security event", func() {
			_, err := subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			res, err := subject.RemoveStaff(ctx, &protos.RemoveStaffRequest{ProjectID: "proj-1", StaffEmail: "staff@x.edu"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Persisted).To(BeTrue())

			_, found, err := store.FindAssignment(ctx, logger, "proj-1", "staff@x.edu")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())

			Expect(securityLogger.LogCallCount()).To(Equal(2))
			_, signature, _, _ := securityLogger.LogArgsForCall(1)
			Expect(signature).To(Equal(RemoveStaffSignature))
		})

		It("succeeds for an assignment that never existed", func() {
			_, err := subject.RemoveStaff(ctx, &protos.RemoveStaffRequest{ProjectID: "proj-1", StaffEmail: "ghost@x.edu"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a request without a project", func() {
			_, err := subject.RemoveStaff(ctx, &protos.RemoveStaffRequest{StaffEmail: "staff@x.edu"})
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
		})
	})

	Describe("#ListProjectAssignments", func() {
		It("returns the project's assignments", func() {
			_, err := subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			res, err := subject.ListProjectAssignments(ctx, &protos.ListProjectAssignmentsRequest{ProjectID: "proj-1"})
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Assignments).To(HaveLen(1))
			Expect(res.Assignments[0].StaffEmail).To(Equal("staff@x.edu"))
			Expect(res.Assignments[0].Permissions.CanEdit).To(BeTrue())
			Expect(res.Assignments[0].AssignedDate).NotTo(BeZero())
		})

		It("returns an empty list for an unknown project", func() {
			res, err := subject.ListProjectAssignments(ctx, &protos.ListProjectAssignmentsRequest{ProjectID: "proj-404"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Assignments).To(BeEmpty())
		})
	})

	Describe("#ListStaffAssignments", func() {
		It("returns the staff member's assignments across projects", func() {
			_, err := subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			req.ProjectID = "proj-2"
			_, err = subject.AssignStaff(ctx, req)
			Expect(err).NotTo(HaveOccurred())

			res, err := subject.ListStaffAssignments(ctx, &protos.ListStaffAssignmentsRequest{StaffEmail: "staff@x.edu"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Assignments).To(HaveLen(2))
		})

		It("rejects a request without a staff email", func() {
			_, err := subject.ListStaffAssignments(ctx, &protos.ListStaffAssignmentsRequest{})
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
		})
	})
})
