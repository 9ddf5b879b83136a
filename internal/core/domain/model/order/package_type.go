package order

import (
	"fmt"

	"packtrack/internal/pkg/errs"
)

// PackageType classifies the contents of a shipment.
// The accepted values mirror the intake form: "documentos" and "paquetes".
type PackageType string

const (
	// PackageDocuments covers flat mail: letters, contracts, certificates.
	PackageDocuments PackageType = "documentos"

	// PackageParcel covers boxed goods.
	PackageParcel PackageType = "paquetes"
)

// ParsePackageType validates a raw package type value from the API.
func ParsePackageType(s string) (PackageType, error) {
	switch PackageType(s) {
	case PackageDocuments, PackageParcel:
		return PackageType(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"package type",
			fmt.Errorf("%q is not one of %q, %q", s, PackageDocuments, PackageParcel),
		)
	}
}

// Validate checks the PackageType is one of the accepted values.
func (p PackageType) Validate() error {
	_, err := ParsePackageType(string(p))
	return err
}

// String returns the raw package type value.
func (p PackageType) String() string {
	return string(p)
}
