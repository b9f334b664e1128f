package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-admin-service/internal/domain"
	apperrors "github.com/spec-kit/school-admin-service/pkg/util"
)

// Capability names a single guarded operation on an entity class.
type Capability string

const (
	CapAccountCreate Capability = "account:create"
	CapAccountUpdate Capability = "account:update"
	CapAccountDelete Capability = "account:delete"

	CapStudentCreate Capability = "student:create"
	CapStudentRead   Capability = "student:read"
	CapStudentUpdate Capability = "student:update"
	CapStudentDelete Capability = "student:delete"

	CapFeesCreate Capability = "fees:create"
	CapFeesRead   Capability = "fees:read"
	CapFeesUpdate Capability = "fees:update"
	CapFeesDelete Capability = "fees:delete"

	CapLibraryCreate Capability = "library:create"
	CapLibraryRead   Capability = "library:read"
	CapLibraryUpdate Capability = "library:update"
	CapLibraryDelete Capability = "library:delete"
)

// AllCapabilities lists every guarded operation; used to verify the table is total.
var AllCapabilities = []Capability{
	CapAccountCreate, CapAccountUpdate, CapAccountDelete,
	CapStudentCreate, CapStudentRead, CapStudentUpdate, CapStudentDelete,
	CapFeesCreate, CapFeesRead, CapFeesUpdate, CapFeesDelete,
	CapLibraryCreate, CapLibraryRead, CapLibraryUpdate, CapLibraryDelete,
}

// capabilityTable is the single source of truth for role permissions.
// Consulted once per request; handlers never re-check roles.
var capabilityTable = map[domain.Role]map[Capability]struct{}{
	domain.RoleAdmin: capSet(
		CapAccountCreate, CapAccountUpdate, CapAccountDelete,
		CapStudentCreate, CapStudentRead, CapStudentUpdate, CapStudentDelete,
		CapFeesCreate, CapFeesRead, CapFeesUpdate, CapFeesDelete,
		CapLibraryCreate, CapLibraryRead, CapLibraryUpdate, CapLibraryDelete,
	),
	domain.RoleOfficeStaff: capSet(
		CapStudentRead,
		CapFeesCreate, CapFeesRead, CapFeesUpdate, CapFeesDelete,
		CapLibraryRead,
	),
	domain.RoleLibrarian: capSet(
		CapStudentRead,
		CapLibraryCreate, CapLibraryUpdate,
	),
}

func capSet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Authorize reports whether the role may perform the capability. Unknown
// roles and unknown capabilities are always denied.
func Authorize(role domain.Role, cap Capability) bool {
	set, ok := capabilityTable[role]
	if !ok {
		return false
	}
	_, allowed := set[cap]
	return allowed
}

// RequireCapability gates a route on the capability table. Missing principal
// yields 401, an authenticated caller without the capability 403.
func RequireCapability(cap Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if !Authorize(principal.Account.Role, cap) {
			return apperrors.NewForbidden("role not permitted for this operation")
		}
		return c.Next()
	}
}
