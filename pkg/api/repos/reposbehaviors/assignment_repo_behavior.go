package reposbehaviors

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
	"github.com/campusfm/projectperm/pkg/perm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"
)

func BehavesLikeAnAssignmentRepo(subjectCreator func() repos.AssignmentRepo) {
	var (
		subject repos.AssignmentRepo

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc

		projectID  string
		staffEmail string
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 1*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("projectperm-test"))

		projectID = "proj-" + uuid.NewV4().String()
		staffEmail = uuid.NewV4().String() + "@x.edu"
	})

	AfterEach(func() {
		cancelFunc()
	})

	assign := func(projectID, staffEmail string, permissions perm.AssignmentPermissions) {
		err := subject.AssignStaff(ctx, logger, repos.AssignStaffRequest{
			ProjectID:    projectID,
			ProjectTitle: "Boiler replacement",
			StaffEmail:   staffEmail,
			StaffName:    "Sam Staff",
			Role:         "Project Manager",
			AssignedBy:   "admin@x.edu",
			Permissions:  permissions,
		})
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("#AssignStaff", func() {
		It("saves the assignment", func() {
			assign(projectID, staffEmail, perm.AssignmentPermissions{CanEdit: true})

			assignment, found, err := subject.FindAssignment(ctx, logger, projectID, staffEmail)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())

			Expect(assignment.ProjectID).To(Equal(projectID))
			Expect(assignment.ProjectTitle).To(Equal("Boiler replacement"))
			Expect(assignment.StaffEmail).To(Equal(staffEmail))
			Expect(assignment.StaffName).To(Equal("Sam Staff"))
			Expect(assignment.Role).To(Equal("Project Manager"))
			Expect(assignment.AssignedBy).To(Equal("admin@x.edu"))
			Expect(assignment.AssignedDate).NotTo(BeZero())
			Expect(assignment.Permissions).To(Equal(perm.AssignmentPermissions{CanEdit: true}))
		})

		It("replaces an existing assignment for the same staff member", func() {
			assign(projectID, staffEmail, perm.AssignmentPermissions{CanEdit: true})
			assign(projectID, staffEmail, perm.AssignmentPermissions{CanDelete: true})

			assignments, err := subject.ListProjectAssignments(ctx, logger, repos.ListProjectAssignmentsQuery{ProjectID: projectID})
			Expect(err).NotTo(HaveOccurred())

			Expect(assignments).To(HaveLen(1))
			Expect(assignments[0].Permissions).To(Equal(perm.AssignmentPermissions{CanDelete: true}))
		})

		It("keeps assignments for other staff members on the project", func() {
			otherEmail := uuid.NewV4().String() + "@x.edu"

			assign(projectID, staffEmail, perm.AssignmentPermissions{})
			assign(projectID, otherEmail, perm.AssignmentPermissions{})

			assignments, err := subject.ListProjectAssignments(ctx, logger, repos.ListProjectAssignmentsQuery{ProjectID: projectID})
			Expect(err).NotTo(HaveOccurred())

			Expect(assignments).To(HaveLen(2))
			Expect(assignments[0].StaffEmail).To(Equal(staffEmail))
			Expect(assignments[1].StaffEmail).To(Equal(otherEmail))
		})
	})

	Describe("#RemoveStaff", func() {
		It("removes the assignment", func() {
			assign(projectID, staffEmail, perm.AssignmentPermissions{CanEdit: true})

			err := subject.RemoveStaff(ctx, logger, projectID, staffEmail)
			Expect(err).NotTo(HaveOccurred())

			_, found, err := subject.FindAssignment(ctx, logger, projectID, staffEmail)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("leaves other staff on the project assigned", func() {
			otherEmail := uuid.NewV4().String() + "@x.edu"

			assign(projectID, staffEmail, perm.AssignmentPermissions{})
			assign(projectID, otherEmail, perm.AssignmentPermissions{})

			err := subject.RemoveStaff(ctx, logger, projectID, staffEmail)
			Expect(err).NotTo(HaveOccurred())

			assignments, err := subject.ListProjectAssignments(ctx, logger, repos.ListProjectAssignmentsQuery{ProjectID: projectID})
			Expect(err).NotTo(HaveOccurred())
			Expect(assignments).To(HaveLen(1))
			Expect(assignments[0].StaffEmail).To(Equal(otherEmail))
		})

		It("succeeds if the staff member was never assigned", func() {
			err := subject.RemoveStaff(ctx, logger, projectID, staffEmail)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("#ListProjectAssignments", func() {
		It("returns an empty list for an unknown project", func() {
			assignments, err := subject.ListProjectAssignments(ctx, logger, repos.ListProjectAssignmentsQuery{ProjectID: projectID})

			Expect(err).NotTo(HaveOccurred())
			Expect(assignments).To(BeEmpty())
		})
	})

	Describe("#ListStaffAssignments", func() {
		It("returns every assignment for the staff member across projects", func() {
			otherProjectID := "proj-" + uuid.NewV4().String()
			otherEmail := uuid.NewV4().String() + "@x.edu"

			assign(projectID, staffEmail, perm.AssignmentPermissions{})
			assign(otherProjectID, staffEmail, perm.AssignmentPermissions{})
			assign(otherProjectID, otherEmail, perm.AssignmentPermissions{})

			assignments, err := subject.ListStaffAssignments(ctx, logger, repos.ListStaffAssignmentsQuery{StaffEmail: staffEmail})
			Expect(err).NotTo(HaveOccurred())

			Expect(assignments).To(HaveLen(2))

			var projectIDs []string
			for _, a := range assignments {
				Expect(a.StaffEmail).To(Equal(staffEmail))
				projectIDs = append(projectIDs, a.ProjectID)
			}
			Expect(projectIDs).To(ConsistOf(projectID, otherProjectID))
		})

		It("returns an empty list for staff without assignments", func() {
			assignments, err := subject.ListStaffAssignments(ctx, logger, repos.ListStaffAssignmentsQuery{StaffEmail: staffEmail})

			Expect(err).NotTo(HaveOccurred())
			Expect(assignments).To(BeEmpty())
		})
	})

	Describe("#FindAssignment", func() {
		It("reports not found when the staff member is assigned elsewhere", func() {
			assign("proj-"+uuid.NewV4().String(), staffEmail, perm.AssignmentPermissions{CanEdit: true})

			_, found, err := subject.FindAssignment(ctx, logger, projectID, staffEmail)

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Describe("#CountAssignments", func() {
		It("counts one assignment per project and staff pair", func() {
			before, err := subject.CountAssignments(ctx, logger)
			Expect(err).NotTo(HaveOccurred())

			otherProjectID := "proj-" + uuid.NewV4().String()

			assign(projectID, staffEmail, perm.AssignmentPermissions{})
			assign(projectID, staffEmail, perm.AssignmentPermissions{CanEdit: true})
			assign(otherProjectID, staffEmail, perm.AssignmentPermissions{})

			after, err := subject.CountAssignments(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(after - before).To(Equal(2))

			Expect(subject.RemoveStaff(ctx, logger, otherProjectID, staffEmail)).To(Succeed())

			after, err = subject.CountAssignments(ctx, logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(after - before).To(Equal(1))
		})
	})
}
