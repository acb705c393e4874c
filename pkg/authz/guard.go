package authz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quangdng/devlink/pkg/apperror"
)

// OwnerOf extracts the owning user id from a resource. Each aggregate wires
// its own extractor so every mutating operation shares one comparison instead
// of repeating it inline per route.
type OwnerOf[T any] func(T) uuid.UUID

// RequireOwner allows the operation iff the actor is the resource owner.
//
// Deliberate asymmetry, carried over from the original API: like/unlike are
// open to any authenticated user and never pass through here, while post
// delete, comment delete and experience/education removal do.
func RequireOwner(resource string, ownerID, actorID uuid.UUID) error {
	if ownerID != actorID {
		return apperror.NewPermissionDenied(fmt.Sprintf("%s belongs to another user", resource))
	}
	return nil
}

// Require is the extractor-parameterized form of RequireOwner.
func Require[T any](resource string, extract OwnerOf[T], target T, actorID uuid.UUID) error {
	return RequireOwner(resource, extract(target), actorID)
}
