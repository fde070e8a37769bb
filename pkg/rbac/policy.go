package rbac

import "github.com/campusfm/projectperm/pkg/perm"

// Policy maps a department to the categories its staff may browse without
// holding an assignment. Departments missing from the map are unrestricted.
type Policy struct {
	Departments map[string][]perm.Category
}

func DefaultPolicy() Policy {
	return Policy{
		Departments: map[string][]perm.Category{
			"Facilities": {
				perm.CategoryRepairs,
				perm.CategoryMaintenance,
			},
			"Engineering": {
				perm.CategoryRepairs,
				perm.CategoryRenovations,
				perm.CategoryNewConstruction,
			},
			"Planning": {
				perm.CategorySpacePlanning,
				perm.CategoryNewConstruction,
			},
			"Finance": {
				perm.CategoryInsights,
			},
		},
	}
}

// Allows reports whether department is unrestricted or lists category.
func (p Policy) Allows(department string, category perm.Category) bool {
	categories, restricted := p.Departments[department]
	if !restricted {
		return true
	}

	for _, c := range categories {
		if c == category {
			return true
		}
	}

	return false
}
