package rpc

import (
	"testing"

	"github.com/gunlinux/gunlinux.ru/internal/db"
)

func TestUserServiceUpdateWithoutPassword_Integration(t *testing.T) {
	tx, ctx, services := withTx(t)

	updated, err := services.users.Update(ctx, UserUpdateRequest{
		ID:   1,
		Name: "root",
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if !updated.CreatedOn.Equal(db.BaseTime) {
		t.Fatalf("creation timestamp not preserved: got %v, want %v", updated.CreatedOn, db.BaseTime)
	}

	user, err := db.NewUserRepo(tx).Authenticate(ctx, "root", db.TestPassword)
	if err != nil {
		t.Fatalf("authenticate after update: %v", err)
	}
	if user == nil {
		t.Fatal("stored password must survive an update without one")
	}
}

func TestUserServiceUpdateMissing_Integration(t *testing.T) {
	_, ctx, services := withTx(t)

	_, err := services.users.Update(ctx, UserUpdateRequest{
		ID:   999,
		Name: "ghost",
	})
	if err == nil {
		t.Fatal("expected an error for a missing user")
	}
}
