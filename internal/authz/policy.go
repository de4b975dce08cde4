// Package authz centralizes every role check behind a single decision table.
// Handlers never compare role strings directly.
package authz

import (
	"clinic-api/pkg/apperr"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Identity is the authenticated caller, decoded from the bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

type Action int

const (
	ActionListUsers Action = iota
	ActionSearchUsers
	ActionViewUserStats
	ActionManageUsers
	ActionViewUser
	ActionUpdateUser
	ActionListPatients
	ActionListOwnPatients
	ActionViewOwnPatientProfile
	ActionUpdateOwnPatientProfile
	ActionSearchPatients
	ActionViewPatientStats
	ActionViewPatientProfile
	ActionUpdatePatientProfile
	ActionCreatePatientProfile
	ActionCompleteFirstVisit
)

// rule describes who may perform an action. selfAllowed lets the resource
// owner through regardless of role. Some role mismatches are usage errors
// rather than boundary violations; usageError keeps that split so existing
// clients still see a 400 where they always have.
type rule struct {
	roles       map[Role]bool
	selfAllowed bool
	usageError  bool
	denyMessage string
}

var policy = map[Action]rule{
	ActionListUsers: {
		roles:       map[Role]bool{RoleAdmin: true, RoleDoctor: true},
		denyMessage: "you do not have permission to view users",
	},
	ActionSearchUsers: {
		roles:       map[Role]bool{RoleAdmin: true, RoleDoctor: true},
		denyMessage: "you do not have permission to search users",
	},
	ActionViewUserStats: {
		roles:       map[Role]bool{RoleAdmin: true},
		denyMessage: "you do not have permission to view statistics",
	},
	ActionManageUsers: {
		roles:       map[Role]bool{RoleAdmin: true},
		denyMessage: "you do not have permission to manage users",
	},
	ActionViewUser: {
		roles:       map[Role]bool{RoleAdmin: true},
		selfAllowed: true,
		denyMessage: "you do not have permission to view this account",
	},
	ActionUpdateUser: {
		roles:       map[Role]bool{RoleAdmin: true},
		selfAllowed: true,
		denyMessage: "you do not have permission to update this account",
	},
	ActionListPatients: {
		roles:       map[Role]bool{RoleAdmin: true, RoleDoctor: true},
		denyMessage: "you do not have permission to view patients",
	},
	ActionListOwnPatients: {
		roles:       map[Role]bool{RoleDoctor: true},
		usageError:  true,
		denyMessage: "only doctors can list their patients",
	},
	ActionViewOwnPatientProfile: {
		roles:       map[Role]bool{RolePatient: true},
		usageError:  true,
		denyMessage: "only patients have a patient profile",
	},
	ActionUpdateOwnPatientProfile: {
		roles:       map[Role]bool{RolePatient: true},
		usageError:  true,
		denyMessage: "only patients can update their patient profile",
	},
	ActionSearchPatients: {
		roles:       map[Role]bool{RoleAdmin: true, RoleDoctor: true},
		denyMessage: "you do not have permission to search patients",
	},
	ActionViewPatientStats: {
		roles:       map[Role]bool{RoleAdmin: true},
		denyMessage: "you do not have permission to view statistics",
	},
	ActionViewPatientProfile: {
		roles:       map[Role]bool{RoleAdmin: true, RoleDoctor: true},
		selfAllowed: true,
		denyMessage: "you do not have permission to view this profile",
	},
	ActionUpdatePatientProfile: {
		roles:       map[Role]bool{RoleAdmin: true, RoleDoctor: true},
		selfAllowed: true,
		denyMessage: "you do not have permission to update this profile",
	},
	ActionCreatePatientProfile: {
		roles:       map[Role]bool{RoleAdmin: true},
		selfAllowed: true,
		denyMessage: "you do not have permission to create this profile",
	},
	ActionCompleteFirstVisit: {
		roles:       map[Role]bool{RoleDoctor: true},
		denyMessage: "only doctors can complete a first visit",
	},
}

// Authorize checks caller against the policy table. owner is the user id the
// requested resource belongs to; pass uuid.Nil for actions without an owner.
func Authorize(caller Identity, action Action, owner uuid.UUID) error {
	r, ok := policy[action]
	if !ok {
		return apperr.New(apperr.KindPermission, "unknown action")
	}

	if r.roles[caller.Role] {
		return nil
	}
	if r.selfAllowed && owner != uuid.Nil && caller.UserID == owner {
		return nil
	}

	if r.usageError {
		return apperr.New(apperr.KindBadRequest, r.denyMessage)
	}
	return apperr.New(apperr.KindPermission, r.denyMessage)
}
