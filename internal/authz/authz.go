// Package authz implements the authorization policy for notes.
//
// The policy is a pure function over (actor, action, resource): no I/O, no
// clock, no hidden state. The caller is responsible for resolving the
// actor's role with a fresh directory lookup before any privileged action;
// the policy itself only evaluates what it is given.
package authz

import "github.com/dkordic/noteboard/models"

// Actor is the authenticated identity a decision is evaluated for.
type Actor struct {
	UserID int64
	Role   models.Role
}

// Resource describes the authorization-relevant attributes of a note.
type Resource struct {
	OwnerID  int64
	IsPublic bool
}

// Action enumerates the operations the policy can decide on.
type Action int

const (
	// ActionRead is a single-note read by id.
	ActionRead Action = iota

	// ActionUpdate is a partial mutation of a note's fields.
	ActionUpdate

	// ActionDelete is the self-service deletion of a note.
	ActionDelete

	// ActionAdminList is the privileged listing of every note, including
	// private ones, with owner identity attached.
	ActionAdminList

	// ActionAdminDelete is the privileged deletion of any note regardless
	// of ownership.
	ActionAdminDelete
)

// String returns a short name for the action, used in logs and deny reasons.
func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionAdminList:
		return "admin-list"
	case ActionAdminDelete:
		return "admin-delete"
	default:
		return "unknown"
	}
}

// Decision is the result of a policy evaluation.
type Decision struct {
	// Allowed reports whether the operation may proceed.
	Allowed bool

	// Reason is a short human-readable explanation of a denial.
	// Empty when Allowed is true.
	Reason string

	// HideExistence is set on a denial that must not reveal whether the
	// resource exists. The caller surfaces such denials as "not found"
	// rather than "forbidden". Only read denials on private notes set it.
	HideExistence bool
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

func denyHidden(reason string) Decision {
	return Decision{Reason: reason, HideExistence: true}
}

// Decide evaluates whether actor may perform action on res.
//
// Invariants enforced here:
//   - IsPublic widens read access only; it never grants write access.
//   - Only the owner may update or delete a note through the self-service
//     actions; no role bypasses ownership on ActionUpdate.
//   - RoleAdmin is required for the two privileged actions and grants
//     nothing else: an admin cannot edit another user's note.
//   - RoleModerator is reserved and currently grants nothing beyond
//     RoleUser. The switch below is exhaustive over roles where the role
//     matters, so adding a role forces a deliberate decision.
func Decide(actor Actor, action Action, res Resource) Decision {
	switch action {
	case ActionRead:
		if res.OwnerID == actor.UserID || res.IsPublic {
			return allow()
		}
		// A private note must look absent to anyone but its owner.
		return denyHidden("private note owned by another user")

	case ActionUpdate:
		if res.OwnerID == actor.UserID {
			return allow()
		}
		return deny("only the owner can update a note")

	case ActionDelete:
		if res.OwnerID == actor.UserID {
			return allow()
		}
		return deny("only the owner can delete a note")

	case ActionAdminList, ActionAdminDelete:
		switch actor.Role {
		case models.RoleAdmin:
			return allow()
		case models.RoleUser, models.RoleModerator:
			return deny("requires admin role")
		default:
			return deny("unknown role")
		}

	default:
		return deny("unknown action")
	}
}

// VisibleTo reports whether a note is part of the actor's general listing:
// the actor owns it or it is public. This is the same rule ActionRead
// applies; repositories mirror it in SQL when filtering list queries.
func VisibleTo(actor Actor, res Resource) bool {
	return res.OwnerID == actor.UserID || res.IsPublic
}
