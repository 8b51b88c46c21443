package portal

import (
	"errors"
	"strings"
	"sync"

	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"
)

var ErrNotSignedIn = errors.New("not signed in")

// Session is the signed-in state of one portal. The role is fixed when the
// session is created; only an actor with that role can sign in. Safe for
// concurrent use.
type Session struct {
	role kernel.Role

	mu     sync.RWMutex
	actor  kernel.Actor
	token  string
	active bool
}

func NewSession(role kernel.Role) *Session {
	return &Session{role: role}
}

func (s *Session) Role() kernel.Role {
	return s.role
}

func (s *Session) SignIn(actor kernel.Actor, token string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != s.role {
		return errs.NewActionIsForbiddenError(actor.String(), "sign in to the "+s.role.String()+" portal")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.actor, s.token, s.active = actor, token, true
	return nil
}

func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actor, s.token, s.active = kernel.Actor{}, "", false
}

// Actor returns ErrNotSignedIn before SignIn and after SignOut.
func (s *Session) Actor() (kernel.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return kernel.Actor{}, ErrNotSignedIn
	}
	return s.actor, nil
}

func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.active {
		return "", ErrNotSignedIn
	}
	return s.token, nil
}
