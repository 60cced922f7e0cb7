package common

import "path"

// PkgAlias returns the alias a plain import of pkgPath would get: the last
// path element. Used to drop schema-declared aliases that are redundant.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
