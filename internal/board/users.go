package board

import (
	"context"
	"strings"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/apperr"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

const (
	MsgUserExists   = "User with this contact number already exists!"
	MsgUserNotFound = "User not found. Please check your contact number or register first."
)

// Session identifies the acting user of an operation. The zero value is
// an anonymous session.
type Session struct {
	User *models.User
}

func (s Session) Active() bool {
	return s.User != nil
}

func (s Session) Is(role models.Role) bool {
	return s.User != nil && s.User.Role == role
}

func (s Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

// Register creates a user for role and makes it the current session.
func (s *Store) Register(ctx context.Context, req RegisterRequest, role models.Role) (*models.User, error) {
	req = req.normalized()
	if err := ValidateRegistration(req, role); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(req.Contact, role); ok {
		return nil, apperr.Duplicate(MsgUserExists)
	}

	user := models.User{
		ID:        s.newID(),
		Name:      req.Name,
		Location:  req.Location,
		Contact:   req.Contact,
		Role:      role,
		Rating:    models.DefaultRating,
		CreatedAt: s.now().UTC(),
	}
	if role == models.RoleLaborer {
		user.Profession = req.Profession
	}

	users := appendCopy(s.users, user)
	if err := s.write(ctx, KeyUsers, users); err != nil {
		return nil, err
	}

	if err := s.setSession(ctx, &user); err != nil {
		// Undo the users write so a retry is not rejected as a duplicate.
		if rerr := s.write(ctx, KeyUsers, s.users); rerr != nil {
			s.log.Error("failed to roll back registration", "user_id", user.ID, "error", rerr)
		}
		return nil, err
	}
	s.users = users

	s.log.Info("user registered", "user_id", user.ID, "role", string(role))
	out := user
	return &out, nil
}

// Login finds the user registered with contact under role. The contact
// number is the only credential.
func (s *Store) Login(ctx context.Context, contact string, role models.Role) (*models.User, error) {
	contact = strings.TrimSpace(contact)
	if !ValidContact(contact) {
		return nil, apperr.Validation("contact", MsgInvalidContact)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.lookup(contact, role)
	if !ok {
		return nil, apperr.NotFound(MsgUserNotFound)
	}
	if err := s.setSession(ctx, &user); err != nil {
		return nil, err
	}
	out := user
	return &out, nil
}

// Logout clears the current session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setSession(ctx, nil)
}

// CurrentSession returns the persisted session.
func (s *Store) CurrentSession() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Session{}
	}
	u := *s.current
	return Session{User: &u}
}

// User returns the user with id.
func (s *Store) User(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findUser(id)
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	u := s.users[i]
	return &u, nil
}

// Stats is the headline number shown next to the user's name: applications
// sent for a laborer, jobs posted for a provider.
func (s *Store) Stats(session Session) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case session.Is(models.RoleLaborer):
		n := 0
		for _, a := range s.applications {
			if a.LaborerID == session.User.ID {
				n++
			}
		}
		return n
	case session.Is(models.RoleProvider):
		n := 0
		for _, j := range s.jobs {
			if j.ProviderID == session.User.ID {
				n++
			}
		}
		return n
	}
	return 0
}

func (s *Store) lookup(contact string, role models.Role) (models.User, bool) {
	for _, u := range s.users {
		if u.Contact == contact && u.Role == role {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) setSession(ctx context.Context, user *models.User) error {
	if err := s.write(ctx, KeyCurrentUser, user); err != nil {
		return err
	}
	s.current = user
	return nil
}
