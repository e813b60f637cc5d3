package services

import (
	"time"

	"storefront/internal/models"
)

// Surface is the login entry point a user came through. The customer
// and admin surfaces are mutually exclusive for privileged roles.
type Surface string

const (
	SurfaceCustomer Surface = "customer"
	SurfaceAdmin    Surface = "admin"
)

// GateAction is the decision a login surface must carry out.
type GateAction int

const (
	// GateAllow admits the user into the area.
	GateAllow GateAction = iota
	// GateDenyRedirect turns the user away without ending their session.
	GateDenyRedirect
	// GateDenyLogout turns the user away and ends their session, after
	// LogoutDelay if one is set.
	GateDenyLogout
)

// GateDecision is the outcome of checking a role against a surface.
// This is a UX decision layered on top of the real authorization in
// middleware; the middleware check on admin routes is what actually
// protects admin-only writes.
type GateDecision struct {
	Action      GateAction
	Message     string
	LogoutDelay time.Duration
}

// pendingAdminGrace is how long a pending_admin reaching the admin
// surface gets to read the explanation before being logged out.
const pendingAdminGrace = 3 * time.Second

// DecideGate checks whether a resolved role may enter through the given
// surface.
func DecideGate(role models.Role, surface Surface) GateDecision {
	switch surface {
	case SurfaceAdmin:
		switch role {
		case models.RoleAdmin:
			return GateDecision{Action: GateAllow}
		case models.RolePendingAdmin:
			return GateDecision{
				Action:      GateDenyLogout,
				Message:     "your admin access is pending approval",
				LogoutDelay: pendingAdminGrace,
			}
		default:
			return GateDecision{
				Action:  GateDenyRedirect,
				Message: "admin access required",
			}
		}
	default: // customer surface
		switch role {
		case models.RoleAdmin:
			return GateDecision{
				Action:  GateDenyLogout,
				Message: "admin accounts must use the admin panel",
			}
		case models.RolePendingAdmin:
			return GateDecision{
				Action:  GateDenyLogout,
				Message: "your admin access is pending approval",
			}
		default:
			return GateDecision{Action: GateAllow}
		}
	}
}
