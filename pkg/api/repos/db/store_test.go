package db_test

import (
	"context"
	"errors"
	"regexp"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/campusfm/projectperm/pkg/api/repos"
	. "github.com/campusfm/projectperm/pkg/api/repos/db"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/sqlx"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		store *Store
		mock  sqlmock.Sqlmock

		ctx    context.Context
		logger logx.Logger

		now     time.Time
		columns []string
	)

	BeforeEach(func() {
		conn, m, err := sqlmock.New()
		Expect(err).NotTo(HaveOccurred())
		mock = m

		ctx = context.Background()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("db-test"))

		now = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)
		columns = []string{
			"id",
			"project_id",
			"project_title",
			"staff_email",
			"staff_name",
			"role",
			"assigned_by",
			"assigned_date",
			"can_edit",
			"can_delete",
			"can_view_documents",
			"can_upload_documents",
		}

		store = NewStore(sqlx.NewDB(conn, sqlx.DBDriverMySQL), WithClock(fakeclock.NewFakeClock(now)))
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
	})

	Describe("#AssignStaff", func() {
		It("upserts the assignment keyed by project and staff email", func() {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(
				"INSERT INTO project_assignment (project_id,project_title,staff_email,staff_name,role,assigned_by,assigned_date,can_edit,can_delete,can_view_documents,can_upload_documents) VALUES (?,?,?,?,?,?,?,?,?,?,?) ON DUPLICATE KEY UPDATE",
			)).
				WithArgs("proj-1", "Roof repair", "staff@x.edu", "Sam", "Technician", "admin@x.edu", now, true, false, true, false).
				WillReturnResult(sqlmock.NewResult(1, 1))
			mock.ExpectCommit()

			err := store.AssignStaff(ctx, logger, repos.AssignStaffRequest{
				ProjectID:    "proj-1",
				ProjectTitle: "Roof repair",
				StaffEmail:   "staff@x.edu",
				StaffName:    "Sam",
				Role:         "Technician",
				AssignedBy:   "admin@x.edu",
				Permissions: perm.AssignmentPermissions{
					CanEdit:          true,
					CanViewDocuments: true,
				},
			})

			Expect(err).NotTo(HaveOccurred())
		})

		It("rolls back and returns the database error", func() {
			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO project_assignment").
				WillReturnError(errors.New("connection reset"))
			mock.ExpectRollback()

			err := store.AssignStaff(ctx, logger, repos.AssignStaffRequest{ProjectID: "proj-1", StaffEmail: "staff@x.edu"})

			Expect(err).To(MatchError("connection reset"))
			Expect(perm.IsPersistenceFailure(err)).To(BeFalse())
		})
	})

	Describe("#RemoveStaff", func() {
		It("deletes the matching row", func() {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM project_assignment WHERE project_id = ? AND staff_email = ?")).
				WithArgs("proj-1", "staff@x.edu").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			Expect(store.RemoveStaff(ctx, logger, "proj-1", "staff@x.edu")).To(Succeed())
		})

		It("succeeds when nothing matched", func() {
			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM project_assignment").
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			Expect(store.RemoveStaff(ctx, logger, "proj-1", "ghost@x.edu")).To(Succeed())
		})
	})

	Describe("#ListProjectAssignments", func() {
		It("returns the project's rows in insertion order", func() {
			mock.ExpectQuery(`SELECT id, project_id, .* FROM project_assignment WHERE project_id = \? ORDER BY id`).
				WithArgs("proj-1").
				WillReturnRows(sqlmock.NewRows(columns).
					AddRow(1, "proj-1", "Roof repair", "a@x.edu", "A", "Lead", "admin@x.edu", now, true, false, true, true).
					AddRow(2, "proj-1", "Roof repair", "b@x.edu", "B", "Tech", "admin@x.edu", now, false, false, false, false))

			assignments, err := store.ListProjectAssignments(ctx, logger, repos.ListProjectAssignmentsQuery{ProjectID: "proj-1"})
			Expect(err).NotTo(HaveOccurred())

			Expect(assignments).To(HaveLen(2))
			Expect(assignments[0]).To(Equal(perm.Assignment{
				ProjectID:    "proj-1",
				ProjectTitle: "Roof repair",
				StaffEmail:   "a@x.edu",
				StaffName:    "A",
				Role:         "Lead",
				AssignedBy:   "admin@x.edu",
				AssignedDate: now,
				Permissions: perm.AssignmentPermissions{
					CanEdit:            true,
					CanViewDocuments:   true,
					CanUploadDocuments: true,
				},
			}))
			Expect(assignments[1].StaffEmail).To(Equal("b@x.edu"))
		})

		It("returns an empty list when the project has no rows", func() {
			mock.ExpectQuery("FROM project_assignment").
				WillReturnRows(sqlmock.NewRows(columns))

			assignments, err := store.ListProjectAssignments(ctx, logger, repos.ListProjectAssignmentsQuery{ProjectID: "proj-9"})

			Expect(err).NotTo(HaveOccurred())
			Expect(assignments).NotTo(BeNil())
			Expect(assignments).To(BeEmpty())
		})
	})

	Describe("#ListStaffAssignments", func() {
		It("filters by staff email", func() {
			mock.ExpectQuery(`FROM project_assignment WHERE staff_email = \? ORDER BY id`).
				WithArgs("a@x.edu").
				WillReturnRows(sqlmock.NewRows(columns).
					AddRow(1, "proj-1", "Roof repair", "a@x.edu", "A", "Lead", "admin@x.edu", now, true, false, false, false).
					AddRow(5, "proj-3", "Chiller", "a@x.edu", "A", "Lead", "admin@x.edu", now, false, false, false, false))

			assignments, err := store.ListStaffAssignments(ctx, logger, repos.ListStaffAssignmentsQuery{StaffEmail: "a@x.edu"})
			Expect(err).NotTo(HaveOccurred())

			Expect(assignments).To(HaveLen(2))
			Expect(assignments[1].ProjectID).To(Equal("proj-3"))
		})

		It("returns the query error", func() {
			mock.ExpectQuery("FROM project_assignment").
				WillReturnError(errors.New("timeout"))

			_, err := store.ListStaffAssignments(ctx, logger, repos.ListStaffAssignmentsQuery{StaffEmail: "a@x.edu"})

			Expect(err).To(MatchError("timeout"))
		})
	})

	Describe("#FindAssignment", func() {
		It("returns the assignment when present", func() {
			mock.ExpectQuery(`FROM project_assignment WHERE project_id = \? AND staff_email = \?`).
				WithArgs("proj-1", "a@x.edu").
				WillReturnRows(sqlmock.NewRows(columns).
					AddRow(1, "proj-1", "Roof repair", "a@x.edu", "A", "Lead", "admin@x.edu", now, true, false, false, false))

			assignment, found, err := store.FindAssignment(ctx, logger, "proj-1", "a@x.edu")

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(assignment.Permissions.CanEdit).To(BeTrue())
		})

		It("reports not found without an error", func() {
			mock.ExpectQuery("FROM project_assignment").
				WillReturnRows(sqlmock.NewRows(columns))

			_, found, err := store.FindAssignment(ctx, logger, "proj-1", "ghost@x.edu")

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Describe("#CountAssignments", func() {
		It("counts every row", func() {
			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM project_assignment")).
				WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

			count, err := store.CountAssignments(ctx, logger)

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
		})
	})
})
