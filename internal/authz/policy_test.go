package authz_test

import (
	"testing"

	"clinic-api/internal/authz"
	"clinic-api/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func caller(role authz.Role) authz.Identity {
	return authz.Identity{UserID: uuid.New(), Email: "caller@example.com", Role: role}
}

func TestAuthorizeGrid(t *testing.T) {
	cases := []struct {
		name    string
		role    authz.Role
		action  authz.Action
		allowed bool
		kind    apperr.Kind
	}{
		{"admin lists users", authz.RoleAdmin, authz.ActionListUsers, true, ""},
		{"doctor lists users", authz.RoleDoctor, authz.ActionListUsers, true, ""},
		{"patient lists users", authz.RolePatient, authz.ActionListUsers, false, apperr.KindPermission},

		{"admin searches users", authz.RoleAdmin, authz.ActionSearchUsers, true, ""},
		{"doctor searches users", authz.RoleDoctor, authz.ActionSearchUsers, true, ""},
		{"patient searches users", authz.RolePatient, authz.ActionSearchUsers, false, apperr.KindPermission},

		{"admin views user stats", authz.RoleAdmin, authz.ActionViewUserStats, true, ""},
		{"doctor views user stats", authz.RoleDoctor, authz.ActionViewUserStats, false, apperr.KindPermission},

		{"admin manages users", authz.RoleAdmin, authz.ActionManageUsers, true, ""},
		{"doctor manages users", authz.RoleDoctor, authz.ActionManageUsers, false, apperr.KindPermission},
		{"patient manages users", authz.RolePatient, authz.ActionManageUsers, false, apperr.KindPermission},

		{"admin lists patients", authz.RoleAdmin, authz.ActionListPatients, true, ""},
		{"doctor lists patients", authz.RoleDoctor, authz.ActionListPatients, true, ""},
		{"patient lists patients", authz.RolePatient, authz.ActionListPatients, false, apperr.KindPermission},

		// Role-shape mismatches on the "my" endpoints are usage errors.
		{"doctor lists own patients", authz.RoleDoctor, authz.ActionListOwnPatients, true, ""},
		{"admin lists own patients", authz.RoleAdmin, authz.ActionListOwnPatients, false, apperr.KindBadRequest},
		{"patient lists own patients", authz.RolePatient, authz.ActionListOwnPatients, false, apperr.KindBadRequest},

		{"patient views own profile", authz.RolePatient, authz.ActionViewOwnPatientProfile, true, ""},
		{"doctor views own profile", authz.RoleDoctor, authz.ActionViewOwnPatientProfile, false, apperr.KindBadRequest},
		{"admin views own profile", authz.RoleAdmin, authz.ActionViewOwnPatientProfile, false, apperr.KindBadRequest},

		{"patient updates own profile", authz.RolePatient, authz.ActionUpdateOwnPatientProfile, true, ""},
		{"doctor updates own profile", authz.RoleDoctor, authz.ActionUpdateOwnPatientProfile, false, apperr.KindBadRequest},

		{"admin searches patients", authz.RoleAdmin, authz.ActionSearchPatients, true, ""},
		{"doctor searches patients", authz.RoleDoctor, authz.ActionSearchPatients, true, ""},
		{"patient searches patients", authz.RolePatient, authz.ActionSearchPatients, false, apperr.KindPermission},

		{"admin views patient stats", authz.RoleAdmin, authz.ActionViewPatientStats, true, ""},
		{"doctor views patient stats", authz.RoleDoctor, authz.ActionViewPatientStats, false, apperr.KindPermission},

		{"doctor views a patient profile", authz.RoleDoctor, authz.ActionViewPatientProfile, true, ""},
		{"doctor updates a patient profile", authz.RoleDoctor, authz.ActionUpdatePatientProfile, true, ""},
		{"doctor creates a patient profile", authz.RoleDoctor, authz.ActionCreatePatientProfile, false, apperr.KindPermission},

		{"doctor completes first visit", authz.RoleDoctor, authz.ActionCompleteFirstVisit, true, ""},
		{"admin completes first visit", authz.RoleAdmin, authz.ActionCompleteFirstVisit, false, apperr.KindPermission},
		{"patient completes first visit", authz.RolePatient, authz.ActionCompleteFirstVisit, false, apperr.KindPermission},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := authz.Authorize(caller(tc.role), tc.action, uuid.Nil)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tc.kind, apperr.KindOf(err))
		})
	}
}

func TestAuthorizeSelfAccess(t *testing.T) {
	self := caller(authz.RolePatient)
	other := uuid.New()

	selfActions := []authz.Action{
		authz.ActionViewUser,
		authz.ActionUpdateUser,
		authz.ActionViewPatientProfile,
		authz.ActionUpdatePatientProfile,
		authz.ActionCreatePatientProfile,
	}

	for _, action := range selfActions {
		// Owner may act on their own resource regardless of role.
		assert.NoError(t, authz.Authorize(self, action, self.UserID))
		// A non-admin touching someone else's resource is a boundary violation.
		err := authz.Authorize(self, action, other)
		assert.Error(t, err)
		assert.Equal(t, apperr.KindPermission, apperr.KindOf(err))
		// Admins are not limited to their own resources.
		assert.NoError(t, authz.Authorize(caller(authz.RoleAdmin), action, other))
	}
}

func TestAuthorizeNilOwnerNeverMatchesSelf(t *testing.T) {
	// A zero owner id must not accidentally grant self access.
	id := authz.Identity{UserID: uuid.Nil, Role: authz.RolePatient}
	err := authz.Authorize(id, authz.ActionUpdateUser, uuid.Nil)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindPermission, apperr.KindOf(err))
}
