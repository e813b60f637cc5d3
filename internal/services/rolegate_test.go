package services_test

import (
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestDecideGateAdminSurface(t *testing.T) {
	decision := services.DecideGate(models.RoleAdmin, services.SurfaceAdmin)
	assert.Equal(t, services.GateAllow, decision.Action)

	// A pending admin is told why, then logged out after a short grace.
	decision = services.DecideGate(models.RolePendingAdmin, services.SurfaceAdmin)
	assert.Equal(t, services.GateDenyLogout, decision.Action)
	assert.Equal(t, 3*time.Second, decision.LogoutDelay)
	assert.Contains(t, decision.Message, "pending approval")

	decision = services.DecideGate(models.RoleUser, services.SurfaceAdmin)
	assert.Equal(t, services.GateDenyRedirect, decision.Action)
	assert.Contains(t, decision.Message, "admin access required")
}

func TestDecideGateCustomerSurface(t *testing.T) {
	decision := services.DecideGate(models.RoleUser, services.SurfaceCustomer)
	assert.Equal(t, services.GateAllow, decision.Action)

	// Privileged roles are pushed to the admin surface without delay.
	decision = services.DecideGate(models.RoleAdmin, services.SurfaceCustomer)
	assert.Equal(t, services.GateDenyLogout, decision.Action)
	assert.Zero(t, decision.LogoutDelay)

	decision = services.DecideGate(models.RolePendingAdmin, services.SurfaceCustomer)
	assert.Equal(t, services.GateDenyLogout, decision.Action)
	assert.Contains(t, decision.Message, "pending approval")
}

func TestRoleTransitionTable(t *testing.T) {
	cases := []struct {
		from, to models.Role
		ok       bool
	}{
		{models.RoleUser, models.RolePendingAdmin, true},
		{models.RolePendingAdmin, models.RoleAdmin, true},
		{models.RolePendingAdmin, models.RoleUser, true},
		{models.RoleUser, models.RoleAdmin, false},
		{models.RoleAdmin, models.RoleUser, false},
		{models.RoleAdmin, models.RolePendingAdmin, false},
		{models.RolePendingAdmin, models.RolePendingAdmin, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
