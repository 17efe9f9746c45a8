package auth

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gunlinux/gunlinux.ru/internal/blog"
	"github.com/gunlinux/gunlinux.ru/internal/db"
)

// SessionUser is the persistence-shaped, identity-bearing record the
// session middleware works with. It is built from the user record, not the
// domain model; this adapter is the only place such a record leaves the
// persistence layer.
type SessionUser struct {
	db.User
}

func (u *SessionUser) GetID() string {
	return strconv.Itoa(u.ID)
}

func (u *SessionUser) IsAuthenticated() bool {
	return u.Authenticated != nil && *u.Authenticated
}

// Adapter bridges the user service to the session middleware. It checks
// existence and credentials through the domain layer first, then fetches
// the record shape the middleware requires. Two queries where one would
// suffice, on purpose: the service layer stays framework-agnostic.
type Adapter struct {
	users *blog.UserService
	repo  *db.UserRepo
	log   *slog.Logger
}

func NewAdapter(users *blog.UserService, repo *db.UserRepo, log *slog.Logger) *Adapter {
	return &Adapter{
		users: users,
		repo:  repo,
		log:   log,
	}
}

// LoadUser resolves a session identity back to a SessionUser. A missing
// user is nil, not an error.
func (a *Adapter) LoadUser(ctx context.Context, id int) (*SessionUser, error) {
	user, err := a.users.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	rec, err := a.repo.RecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	return &SessionUser{User: *rec}, nil
}

// AuthenticateAndLogin verifies credentials through the service layer and
// returns the middleware-shaped record. Wrong password and unknown name
// both come back nil.
func (a *Adapter) AuthenticateAndLogin(ctx context.Context, name, password string) (*SessionUser, error) {
	user, err := a.users.Authenticate(ctx, name, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		a.log.Info("login rejected", "name", name)
		return nil, nil
	}

	rec, err := a.repo.RecordByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	return &SessionUser{User: *rec}, nil
}
