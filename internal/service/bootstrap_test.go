package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h0pler/whs2nd-secureshoppingmall/internal/models"
)

func TestEnsureAdmin_SeedsOnce(t *testing.T) {
	rp := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, rp))

	var admins []models.User
	require.NoError(t, rp.DB.Where("username = ? AND role = ?", AdminUsername, AdminRole).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, AdminPassword, admins[0].Password)
	assert.Equal(t, AdminFullName, admins[0].FullName)

	// second run is a no-op
	require.NoError(t, EnsureAdmin(ctx, rp))
	require.NoError(t, rp.DB.Where("username = ? AND role = ?", AdminUsername, AdminRole).Find(&admins).Error)
	assert.Len(t, admins, 1)
}

func TestEnsureAdmin_KeepsExistingRow(t *testing.T) {
	rp := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, rp))

	changed := "Renamed Admin"
	require.NoError(t, rp.UpdateProfile(ctx, AdminUsername, changed, nil, nil))

	require.NoError(t, EnsureAdmin(ctx, rp))

	got, err := rp.GetUserByUsername(ctx, AdminUsername)
	require.NoError(t, err)
	assert.Equal(t, changed, got.FullName)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	rp := newTestRepo(t)

	// newTestRepo already migrated once; a second run must not fail
	// or disturb existing rows
	user := models.User{Username: "alice", Password: "p1", Role: "customer", FullName: "Alice A"}
	require.NoError(t, rp.CreateUser(context.Background(), &user))

	require.NoError(t, EnsureSchema(rp.DB))

	got, err := rp.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice A", got.FullName)
}
