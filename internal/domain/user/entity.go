package user

import "github.com/google/uuid"

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
func (a Actor) IsStaff() bool { return a.Role.AtLeast(RoleStaff) }

// CanView allows the owner of a record and any staff member.
func (a Actor) CanView(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.IsStaff()
}
