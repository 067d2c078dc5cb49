package shared

import (
	"github.com/google/uuid"
)

// Identity is the authenticated caller, reconstructed solely from verified
// token claims. It exists only for the duration of a request.
type Identity struct {
	SubjectID uuid.UUID
}

// NewIdentity creates an identity for the given subject
func NewIdentity(subjectID uuid.UUID) Identity {
	return Identity{SubjectID: subjectID}
}

// IsZero reports whether the identity carries no subject
func (i Identity) IsZero() bool {
	return i.SubjectID == uuid.Nil
}

// RequireOwner checks that the identity's subject is the recorded owner of
// the operation's target. A mismatch returns ErrForbidden; callers must
// propagate it to the boundary, never swallow it. Which owner id is passed
// in depends on the target: profile sub-records inherit the profile's
// owner, while a comment is owned by its own author.
func RequireOwner(identity Identity, ownerID uuid.UUID) error {
	if identity.SubjectID != ownerID {
		return ErrForbidden
	}
	return nil
}
