package assets

import (
	"fmt"
	"regexp"
)

// styleName matches the names accepted for stylesheets: "pep", "modern",
// "python-org_2". Anything with a dot or separator is a path, not a name.
var styleName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateStyleName reports ErrInvalidAssetName unless name can be used as
// the base name of styles/<name>.css.
func ValidateStyleName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty style name", ErrInvalidAssetName)
	}
	if !styleName.MatchString(name) {
		return fmt.Errorf("%w: %q is not a style name (pass a file path for custom CSS)", ErrInvalidAssetName, name)
	}
	return nil
}
