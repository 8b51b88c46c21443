package kernel

import (
	"errors"
	"fmt"

	"meddelivery/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("actor must be created via NewActor")

// Actor is the authenticated party behind a request. For a pharmacy the ID is
// the pharmacy's own id, for a driver the driver's user id, for a customer the
// customer's user id.
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor has the given role and id.
func (a Actor) Is(role Role, id UUID) bool {
	return a.role == role && a.id.IsEqual(id)
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) String() string {
	return fmt.Sprintf("%s %s", a.role, a.id)
}
