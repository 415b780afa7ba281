package importer

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/regwise/internal/domain"
)

// ValidateCatalogFile checks the catalog for errors before conversion.
// Returns a slice of all validation errors found. Meetings with unreadable
// days or times are not errors; Convert drops them.
func ValidateCatalogFile(file *CatalogFile) []error {
	var errs []error

	if len(file.Courses) == 0 {
		return []error{fmt.Errorf("courses: at least one course is required")}
	}

	keys := make([]string, 0, len(file.Courses))
	for k := range file.Courses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	normalized := make(map[string]string)
	indexes := make(map[string]string)
	for _, raw := range keys {
		c := file.Courses[raw]
		key := domain.NormalizeKey(raw)
		if !domain.ValidKey(key) {
			errs = append(errs, fmt.Errorf("courses[%q]: invalid course key (expected SSS:NNN)", raw))
			continue
		}
		if prev, dup := normalized[key]; dup {
			errs = append(errs, fmt.Errorf("courses[%q]: duplicate of %q after padding", raw, prev))
			continue
		}
		normalized[key] = raw
		errs = append(errs, validateCourse(raw, c, indexes)...)
	}

	return errs
}

func validateCourse(raw string, c CourseImport, indexes map[string]string) []error {
	var errs []error

	if c.Credits < 0 {
		errs = append(errs, fmt.Errorf("courses[%q].credits: must be >= 0, got %g", raw, float64(c.Credits)))
	}
	for i, s := range c.Sections {
		field := fmt.Sprintf("courses[%q].sections[%d]", raw, i)
		idx := s.Index.String()
		if idx == "" {
			errs = append(errs, fmt.Errorf("%s.index is required", field))
			continue
		}
		if owner, dup := indexes[idx]; dup {
			errs = append(errs, fmt.Errorf("%s.index %q is already used by %s", field, idx, owner))
			continue
		}
		indexes[idx] = raw
	}

	return errs
}
