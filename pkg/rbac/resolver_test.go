package rbac_test

import (
	"context"
	"errors"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/api/repos/inmemory"
	"github.com/campusfm/projectperm/pkg/api/repos/reposfakes"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
	"github.com/campusfm/projectperm/pkg/perm"
	. "github.com/campusfm/projectperm/pkg/rbac"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolver", func() {
	var (
		ctx    context.Context
		logger logx.Logger

		store    *inmemory.Store
		resolver *Resolver

		admin    perm.User
		client   perm.User
		staff    perm.User
		editor   perm.User
		guest    perm.User
		planner  perm.User
		newcomer perm.User
	)

	assign := func(projectID, staffEmail string, permissions perm.AssignmentPermissions) {
		err := store.AssignStaff(ctx, logger, repos.AssignStaffRequest{
			ProjectID:   projectID,
			StaffEmail:  staffEmail,
			Permissions: permissions,
		})
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("rbac-test"))

		store = inmemory.NewStore()
		resolver = NewResolver(store, DefaultPolicy())

		admin = perm.User{Email: "admin@x.edu", Role: perm.RoleAdmin, Department: "Facilities"}
		client = perm.User{Email: "client@x.edu", Role: perm.RoleClient, Department: "Finance"}
		staff = perm.User{Email: "staff@x.edu", Role: perm.RoleStaff, Department: "Facilities"}
		editor = perm.User{Email: "editor@x.edu", Role: perm.RoleEditor, Department: "Finance"}
		guest = perm.User{Email: "guest@x.edu", Role: perm.RoleGuest, Department: "Facilities"}
		planner = perm.User{Email: "planner@x.edu", Role: perm.RoleStaff, Department: "Planning"}
		newcomer = perm.User{Email: "new@x.edu", Role: perm.RoleStaff, Department: "General"}
	})

	Describe("#CanAccessPage", func() {
		It("always lets admins and clients in", func() {
			for _, category := range []perm.Category{perm.CategoryRepairs, perm.CategoryInsights} {
				Expect(resolver.CanAccessPage(ctx, logger, admin, category)).To(BeTrue())
				Expect(resolver.CanAccessPage(ctx, logger, client, category)).To(BeTrue())
			}
		})

		It("fails open for roles it does not know", func() {
			Expect(resolver.CanAccessPage(ctx, logger, guest, perm.CategoryInsights)).To(BeTrue())

			other := perm.User{Email: "x@x.edu", Role: "Contractor", Department: "Finance"}
			Expect(resolver.CanAccessPage(ctx, logger, other, perm.CategoryRepairs)).To(BeTrue())
		})

		It("lets staff into categories their department lists", func() {
			Expect(resolver.CanAccessPage(ctx, logger, staff, perm.CategoryRepairs)).To(BeTrue())
		})

		It("keeps unassigned staff out of categories their department does not list", func() {
			Expect(resolver.CanAccessPage(ctx, logger, staff, perm.CategorySpacePlanning)).To(BeFalse())
			Expect(resolver.CanAccessPage(ctx, logger, editor, perm.CategoryRepairs)).To(BeFalse())
		})

		It("lets staff from unrestricted departments in everywhere", func() {
			Expect(resolver.CanAccessPage(ctx, logger, newcomer, perm.CategoryInsights)).To(BeTrue())
		})

		It("lets staff holding any assignment into every category", func() {
			assign("proj-9", staff.Email, perm.AssignmentPermissions{})

			Expect(resolver.CanAccessPage(ctx, logger, staff, perm.CategorySpacePlanning)).To(BeTrue())
		})
	})

	Describe("#UserPermissions", func() {
		It("grants admins everything with no assigned projects", func() {
			permissions, err := resolver.UserPermissions(ctx, logger, admin, perm.CategoryRepairs)
			Expect(err).NotTo(HaveOccurred())

			Expect(permissions).To(Equal(perm.UserPermissions{
				CanView:            true,
				CanAdd:             true,
				CanEdit:            true,
				CanDelete:          true,
				CanApprove:         true,
				CanAssignStaff:     true,
				CanManageDocuments: true,
				CanExport:          true,
				CanManageInsights:  true,
				AssignedProjects:   []string{},
			}))
		})

		It("falls back to read-only when the page is denied", func() {
			permissions, err := resolver.UserPermissions(ctx, logger, planner, perm.CategoryRepairs)
			Expect(err).NotTo(HaveOccurred())

			Expect(permissions).To(Equal(perm.UserPermissions{
				CanView:          true,
				CanExport:        true,
				AssignedProjects: []string{},
			}))
		})

		It("gives clients and guests the read-only set", func() {
			for _, user := range []perm.User{client, guest} {
				permissions, err := resolver.UserPermissions(ctx, logger, user, perm.CategoryRepairs)
				Expect(err).NotTo(HaveOccurred())

				Expect(permissions.CanView).To(BeTrue())
				Expect(permissions.CanExport).To(BeTrue())
				Expect(permissions.CanAdd).To(BeFalse())
				Expect(permissions.CanEdit).To(BeFalse())
				Expect(permissions.CanManageInsights).To(BeFalse())
			}
		})

		It("lets unassigned staff add but not edit", func() {
			permissions, err := resolver.UserPermissions(ctx, logger, newcomer, perm.CategoryRepairs)
			Expect(err).NotTo(HaveOccurred())

			Expect(permissions.CanView).To(BeTrue())
			Expect(permissions.CanAdd).To(BeTrue())
			Expect(permissions.CanExport).To(BeTrue())
			Expect(permissions.CanEdit).To(BeFalse())
			Expect(permissions.CanDelete).To(BeFalse())
			Expect(permissions.CanManageDocuments).To(BeFalse())
			Expect(permissions.AssignedProjects).To(BeEmpty())
		})

		It("lets assigned staff edit and manage documents, never delete or approve", func() {
			assign("proj-1", staff.Email, perm.AssignmentPermissions{CanEdit: true, CanDelete: true})
			assign("proj-2", staff.Email, perm.AssignmentPermissions{})

			permissions, err := resolver.UserPermissions(ctx, logger, staff, perm.CategoryRepairs)
			Expect(err).NotTo(HaveOccurred())

			Expect(permissions.CanEdit).To(BeTrue())
			Expect(permissions.CanManageDocuments).To(BeTrue())
			Expect(permissions.CanDelete).To(BeFalse())
			Expect(permissions.CanApprove).To(BeFalse())
			Expect(permissions.CanAssignStaff).To(BeFalse())
			Expect(permissions.CanManageInsights).To(BeFalse())
			Expect(permissions.AssignedProjects).To(ConsistOf("proj-1", "proj-2"))
		})

		It("lets editors manage insights", func() {
			assign("proj-3", editor.Email, perm.AssignmentPermissions{})

			permissions, err := resolver.UserPermissions(ctx, logger, editor, perm.CategoryInsights)
			Expect(err).NotTo(HaveOccurred())

			Expect(permissions.CanManageInsights).To(BeTrue())
			Expect(permissions.AssignedProjects).To(Equal([]string{"proj-3"}))
		})
	})

	Describe("#CanViewProject", func() {
		It("lets admins and clients view any project", func() {
			Expect(resolver.CanViewProject(ctx, logger, admin, "proj-1")).To(BeTrue())
			Expect(resolver.CanViewProject(ctx, logger, client, "proj-1")).To(BeTrue())
		})

		It("requires an assignment on that exact project", func() {
			assign("proj-1", staff.Email, perm.AssignmentPermissions{})

			Expect(resolver.CanViewProject(ctx, logger, staff, "proj-1")).To(BeTrue())
			Expect(resolver.CanViewProject(ctx, logger, staff, "proj-2")).To(BeFalse())
		})

		It("does not fail open for guests", func() {
			Expect(resolver.CanViewProject(ctx, logger, guest, "proj-1")).To(BeFalse())
		})
	})

	Describe("#CanEditProject and #CanDeleteProject", func() {
		It("lets admins do both", func() {
			Expect(resolver.CanEditProject(ctx, logger, admin, "proj-1")).To(BeTrue())
			Expect(resolver.CanDeleteProject(ctx, logger, admin, "proj-1")).To(BeTrue())
		})

		It("does not give clients edit rights", func() {
			Expect(resolver.CanEditProject(ctx, logger, client, "proj-1")).To(BeFalse())
			Expect(resolver.CanDeleteProject(ctx, logger, client, "proj-1")).To(BeFalse())
		})

		It("uses the flags stored on the assignment", func() {
			assign("proj-1", staff.Email, perm.AssignmentPermissions{CanEdit: true, CanDelete: false})

			Expect(resolver.CanEditProject(ctx, logger, staff, "proj-1")).To(BeTrue())
			Expect(resolver.CanDeleteProject(ctx, logger, staff, "proj-1")).To(BeFalse())
			Expect(resolver.CanEditProject(ctx, logger, staff, "proj-2")).To(BeFalse())
		})

		It("follows reassignment", func() {
			assign("proj-1", staff.Email, perm.AssignmentPermissions{CanEdit: true})
			assign("proj-1", staff.Email, perm.AssignmentPermissions{CanDelete: true})

			Expect(resolver.CanEditProject(ctx, logger, staff, "proj-1")).To(BeFalse())
			Expect(resolver.CanDeleteProject(ctx, logger, staff, "proj-1")).To(BeTrue())
		})

		It("reports false once the assignment is removed", func() {
			assign("proj-1", staff.Email, perm.AssignmentPermissions{CanEdit: true})
			Expect(store.RemoveStaff(ctx, logger, "proj-1", staff.Email)).To(Succeed())

			Expect(resolver.CanEditProject(ctx, logger, staff, "proj-1")).To(BeFalse())
		})
	})

	Describe("page and project granularity", func() {
		It("lets an assignment elsewhere open the page while the project stays closed", func() {
			assign("proj-a", planner.Email, perm.AssignmentPermissions{CanEdit: true})

			Expect(resolver.CanAccessPage(ctx, logger, planner, perm.CategoryRepairs)).To(BeTrue())
			Expect(resolver.CanViewProject(ctx, logger, planner, "proj-b")).To(BeFalse())
		})
	})

	Context("when the repo fails", func() {
		var fakeRepo *reposfakes.FakeAssignmentRepo

		BeforeEach(func() {
			fakeRepo = new(reposfakes.FakeAssignmentRepo)
			fakeRepo.ListStaffAssignmentsReturns(nil, errors.New("db down"))
			fakeRepo.FindAssignmentReturns(perm.Assignment{}, false, errors.New("db down"))

			resolver = NewResolver(fakeRepo, DefaultPolicy())
		})

		It("returns the error from page checks that need assignments", func() {
			_, err := resolver.CanAccessPage(ctx, logger, staff, perm.CategoryInsights)
			Expect(err).To(MatchError("db down"))

			_, err = resolver.UserPermissions(ctx, logger, newcomer, perm.CategoryRepairs)
			Expect(err).To(MatchError("db down"))
		})

		It("returns the error from project checks", func() {
			_, err := resolver.CanViewProject(ctx, logger, staff, "proj-1")
			Expect(err).To(MatchError("db down"))

			_, err = resolver.CanDeleteProject(ctx, logger, staff, "proj-1")
			Expect(err).To(MatchError("db down"))
		})

		It("does not consult the repo for admins", func() {
			Expect(resolver.CanEditProject(ctx, logger, admin, "proj-1")).To(BeTrue())
			Expect(fakeRepo.FindAssignmentCallCount()).To(BeZero())
		})
	})
})
