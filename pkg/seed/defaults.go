package seed

import "github.com/campusfm/projectperm/pkg/perm"

// DefaultAssignments is the built-in demo data set.
func DefaultAssignments() []perm.Assignment {
	return []perm.Assignment{
		{
			ProjectID:    "proj-1",
			ProjectTitle: "Main Library Roof Replacement",
			StaffEmail:   "staff@university.edu",
			StaffName:    "Jordan Reyes",
			Role:         "Project Manager",
			AssignedBy:   "admin@university.edu",
			Permissions: perm.AssignmentPermissions{
				CanEdit:            true,
				CanDelete:          false,
				CanViewDocuments:   true,
				CanUploadDocuments: true,
			},
		},
		{
			ProjectID:    "proj-2",
			ProjectTitle: "Science Hall HVAC Renovation",
			StaffEmail:   "engineer@university.edu",
			StaffName:    "Priya Natarajan",
			Role:         "Lead Engineer",
			AssignedBy:   "admin@university.edu",
			Permissions: perm.AssignmentPermissions{
				CanEdit:            true,
				CanDelete:          false,
				CanViewDocuments:   true,
				CanUploadDocuments: true,
			},
		},
		{
			ProjectID:    "proj-2",
			ProjectTitle: "Science Hall HVAC Renovation",
			StaffEmail:   "staff@university.edu",
			StaffName:    "Jordan Reyes",
			Role:         "Coordinator",
			AssignedBy:   "admin@university.edu",
			Permissions: perm.AssignmentPermissions{
				CanViewDocuments: true,
			},
		},
		{
			ProjectID:    "proj-3",
			ProjectTitle: "Student Center Space Planning",
			StaffEmail:   "planner@university.edu",
			StaffName:    "Alex Kim",
			Role:         "Space Planner",
			AssignedBy:   "admin@university.edu",
			Permissions: perm.AssignmentPermissions{
				CanEdit:            true,
				CanDelete:          true,
				CanViewDocuments:   true,
				CanUploadDocuments: true,
			},
		},
		{
			ProjectID:    "proj-4",
			ProjectTitle: "Athletics Field Lighting Repair",
			StaffEmail:   "editor@university.edu",
			StaffName:    "Morgan Lee",
			Role:         "Editor",
			AssignedBy:   "admin@university.edu",
			Permissions: perm.AssignmentPermissions{
				CanEdit:          true,
				CanViewDocuments: true,
			},
		},
	}
}
