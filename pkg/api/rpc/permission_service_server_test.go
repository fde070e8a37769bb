package rpc_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/campusfm/projectperm/pkg/api/protos"
	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/api/repos/inmemory"
	"github.com/campusfm/projectperm/pkg/api/repos/reposfakes"
	. "github.com/campusfm/projectperm/pkg/api/rpc"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/rbac"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ = Describe("PermissionServiceServer", func() {
	var (
		subject *PermissionServiceServer
		logger  logx.Logger
		store   *inmemory.Store

		ctx context.Context

		staff protos.User
	)

	BeforeEach(func() {
		logger = lagerx.NewLogger(lagertest.NewTestLogger("rpc-test"))
		store = inmemory.NewStore()
		ctx = context.Background()

		subject = NewPermissionServiceServer(logger, rbac.NewResolver(store, rbac.DefaultPolicy()))

		staff = protos.User{Email: "staff@x.edu", Role: "Staff", Department: "Facilities"}

		err := store.AssignStaff(ctx, logger, repos.AssignStaffRequest{
			ProjectID:   "proj-1",
			StaffEmail:  "staff@x.edu",
			Permissions: perm.AssignmentPermissions{CanEdit: true},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("#CanAccessPage", func() {
		It("answers from the resolver", func() {
			res, err := subject.CanAccessPage(ctx, &protos.CanAccessPageRequest{User: staff, Category: "insights"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeTrue())

			planner := protos.User{Email: "planner@x.edu", Role: "Staff", Department: "Planning"}
			res, err = subject.CanAccessPage(ctx, &protos.CanAccessPageRequest{User: planner, Category: "repairs"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeFalse())
		})

		It("requires a role", func() {
			_, err := subject.CanAccessPage(ctx, &protos.CanAccessPageRequest{
				User:     protos.User{Email: "x@x.edu"},
				Category: "repairs",
			})

			s, _ := status.FromError(err)
			Expect(s.Code()).To(Equal(codes.InvalidArgument))
			Expect(s.Message()).To(ContainSubstring("user.role is required"))
		})
	})

	Describe("#GetUserPermissions", func() {
		It("returns the resolved permission set", func() {
			res, err := subject.GetUserPermissions(ctx, &protos.GetUserPermissionsRequest{User: staff, Category: "repairs"})
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Permissions.CanView).To(BeTrue())
			Expect(res.Permissions.CanAdd).To(BeTrue())
			Expect(res.Permissions.CanEdit).To(BeTrue())
			Expect(res.Permissions.CanDelete).To(BeFalse())
			Expect(res.Permissions.AssignedProjects).To(Equal([]string{"proj-1"}))
		})

		It("requires a category", func() {
			_, err := subject.GetUserPermissions(ctx, &protos.GetUserPermissionsRequest{User: staff})
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
		})
	})

	Describe("project checks", func() {
		It("allows viewing and editing the assigned project only", func() {
			res, err := subject.CanViewProject(ctx, &protos.ProjectAccessRequest{User: staff, ProjectID: "proj-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeTrue())

			res, err = subject.CanEditProject(ctx, &protos.ProjectAccessRequest{User: staff, ProjectID: "proj-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeTrue())

			res, err = subject.CanDeleteProject(ctx, &protos.ProjectAccessRequest{User: staff, ProjectID: "proj-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeFalse())

			res, err = subject.CanViewProject(ctx, &protos.ProjectAccessRequest{User: staff, ProjectID: "proj-2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Allowed).To(BeFalse())
		})

		It("requires a project", func() {
			_, err := subject.CanEditProject(ctx, &protos.ProjectAccessRequest{User: staff})
			Expect(status.Code(err)).To(Equal(codes.InvalidArgument))
		})

		It("returns Unknown when the repo fails", func() {
			fakeRepo := new(reposfakes.FakeAssignmentRepo)
			fakeRepo.FindAssignmentReturns(perm.Assignment{}, false, errors.New("db down"))
			subject = NewPermissionServiceServer(logger, rbac.NewResolver(fakeRepo, rbac.DefaultPolicy()))

			_, err := subject.CanDeleteProject(ctx, &protos.ProjectAccessRequest{User: staff, ProjectID: "proj-1"})
			Expect(status.Code(err)).To(Equal(codes.Unknown))
		})
	})
})
