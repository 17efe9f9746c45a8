package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/gunlinux/gunlinux.ru/internal/domain"
)

func TestUserRepoAuthenticate_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	user, err := repos.users.Authenticate(ctx, "admin", TestPassword)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user == nil {
		t.Fatal("expected valid credentials to authenticate")
	}
	if user.Name != "admin" {
		t.Fatalf("unexpected user %q", user.Name)
	}
	if user.Password != "" {
		t.Fatal("password hash must not leak into the domain model")
	}

	wrong, err := repos.users.Authenticate(ctx, "admin", "wrong-password")
	if err != nil {
		t.Fatalf("wrong password must not error: %v", err)
	}
	unknown, err := repos.users.Authenticate(ctx, "nobody", TestPassword)
	if err != nil {
		t.Fatalf("unknown name must not error: %v", err)
	}
	if wrong != nil || unknown != nil {
		t.Fatal("failed authentication must return nil for both failure modes")
	}

	// a user without a stored password never authenticates
	guest, err := repos.users.Authenticate(ctx, "guest", "")
	if err != nil {
		t.Fatalf("passwordless user must not error: %v", err)
	}
	if guest != nil {
		t.Fatal("user without a password must not authenticate")
	}
}

func TestUserRepoCreateHashesPassword_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	created, err := repos.users.Create(ctx, &domain.User{Name: "editor", Password: "s3cret"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.CreatedOn.IsZero() {
		t.Fatal("expected createdon to default to now")
	}

	rec, err := repos.users.RecordByName(ctx, "editor")
	if err != nil {
		t.Fatalf("read back record: %v", err)
	}
	if rec == nil || rec.Password == nil {
		t.Fatal("expected stored password hash")
	}
	if !strings.HasPrefix(*rec.Password, "$2") {
		t.Fatalf("stored password is not a bcrypt hash: %q", *rec.Password)
	}
	if *rec.Password == "s3cret" {
		t.Fatal("plaintext password stored")
	}
	if !rec.CheckPassword("s3cret") {
		t.Fatal("stored hash does not verify the plaintext")
	}
}

func TestUserRepoByName_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	user, err := repos.users.ByName(ctx, "admin")
	if err != nil {
		t.Fatalf("get user by name: %v", err)
	}
	if user == nil || user.ID != 1 {
		t.Fatalf("unexpected user %+v", user)
	}

	missing, err := repos.users.ByName(ctx, "nobody")
	if err != nil {
		t.Fatalf("missing name must not error: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing name")
	}
}

func TestUserRepoUpdateRehashes_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	_, err := repos.users.Update(ctx, &domain.User{
		ID:        1,
		Name:      "admin",
		Password:  "rotated",
		CreatedOn: BaseTime,
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}

	user, err := repos.users.Authenticate(ctx, "admin", "rotated")
	if err != nil {
		t.Fatalf("authenticate after rotation: %v", err)
	}
	if user == nil {
		t.Fatal("expected new password to authenticate")
	}

	old, err := repos.users.Authenticate(ctx, "admin", TestPassword)
	if err != nil {
		t.Fatalf("old password must not error: %v", err)
	}
	if old != nil {
		t.Fatal("old password must stop working after rotation")
	}
}

func TestUserRepoUpdateKeepsPasswordWhenEmpty_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	// renaming without supplying a password must not touch the hash
	_, err := repos.users.Update(ctx, &domain.User{
		ID:        1,
		Name:      "root",
		CreatedOn: BaseTime,
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}

	user, err := repos.users.Authenticate(ctx, "root", TestPassword)
	if err != nil {
		t.Fatalf("authenticate after passwordless update: %v", err)
	}
	if user == nil {
		t.Fatal("stored password hash must survive an update without a password")
	}

	rec, err := repos.users.RecordByName(ctx, "root")
	if err != nil {
		t.Fatalf("read back record: %v", err)
	}
	if rec == nil || rec.Password == nil {
		t.Fatal("password column was cleared")
	}
}

func TestUserRepoUpdateMissing_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	_, err := repos.users.Update(ctx, &domain.User{ID: 99999, Name: "ghost", CreatedOn: BaseTime})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepoDelete_Integration(t *testing.T) {
	_, ctx, repos := withTx(t)

	deleted, err := repos.users.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete of existing user to report true")
	}

	deleted, err = repos.users.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("repeat delete must not error: %v", err)
	}
	if deleted {
		t.Fatal("expected repeat delete to report false")
	}
}
