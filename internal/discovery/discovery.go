// Package discovery locates Molecule-testable roles in a repository.
//
// A role is testable when it carries a molecule/default scenario directory.
// Roles live two or three levels below the roles root: category/role, or
// category/role/subrole for nested collections (e.g. cloud/aws/s3). No deeper
// nesting is searched.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/molekit/molekit/internal/constants"
)

// Roles returns the sorted identifiers of every testable role under rolesDir.
//
// The result is lexicographically sorted and duplicate-free. A missing or
// empty rolesDir yields an empty slice, never an error: "no roles found" is a
// valid answer, not a failure.
func Roles(rolesDir string) []string {
	categories, err := os.ReadDir(rolesDir)
	if err != nil {
		return nil
	}

	var roles []string
	for _, category := range categories {
		if !category.IsDir() || strings.HasPrefix(category.Name(), ".") {
			continue
		}

		categoryPath := filepath.Join(rolesDir, category.Name())
		entries, err := os.ReadDir(categoryPath)
		if err != nil {
			continue
		}

		for _, role := range entries {
			if !role.IsDir() {
				continue
			}

			rolePath := filepath.Join(categoryPath, role.Name())
			if hasScenario(rolePath) {
				roles = append(roles, category.Name()+"/"+role.Name())
				continue
			}

			// Third level: collections like cloud/aws/s3.
			roles = append(roles, subRoles(rolePath, category.Name()+"/"+role.Name())...)
		}
	}

	sort.Strings(roles)
	return roles
}

// subRoles returns identifiers for testable subroles directly under rolePath.
func subRoles(rolePath, prefix string) []string {
	entries, err := os.ReadDir(rolePath)
	if err != nil {
		return nil
	}

	var roles []string
	for _, sub := range entries {
		if !sub.IsDir() {
			continue
		}
		if hasScenario(filepath.Join(rolePath, sub.Name())) {
			roles = append(roles, prefix+"/"+sub.Name())
		}
	}
	return roles
}

// hasScenario reports whether the role directory carries the default
// Molecule scenario marker.
func hasScenario(rolePath string) bool {
	marker := filepath.Join(rolePath, constants.MoleculeDir, constants.DefaultScenario)
	info, err := os.Stat(marker)
	return err == nil && info.IsDir()
}
