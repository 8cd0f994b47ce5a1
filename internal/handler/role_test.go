package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/handler"
	"github.com/dangerclosesec/orgadmin/internal/mocks"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type roleDeps struct {
	roles    *mocks.MockRoleRepositoryIface
	users    *mocks.MockUserRepositoryIface
	history  *mocks.MockHistoryRepositoryIface
	recorder *mocks.MockRecorder
}

func newRoleHandler(ctrl *gomock.Controller) (*handler.RoleHandler, roleDeps) {
	tx := mocks.NewMockTransactorIface(ctrl)
	tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	d := roleDeps{
		roles:    mocks.NewMockRoleRepositoryIface(ctrl),
		users:    mocks.NewMockUserRepositoryIface(ctrl),
		history:  mocks.NewMockHistoryRepositoryIface(ctrl),
		recorder: mocks.NewMockRecorder(ctrl),
	}
	svc := service.NewRoleService(tx, d.roles, d.users, mocks.NewMockOfficerRepositoryIface(ctrl), d.history, d.recorder, nil)
	return handler.NewRoleHandler(svc, rs), d
}

func TestRoleHandler_Detach(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, _ := newRoleHandler(ctrl)

		rec, env := serve(t, h.Detach, call{
			method:  http.MethodDelete,
			pattern: "/roles/{id}/users/{userID}",
			target:  "/roles/" + uuid.NewString() + "/users/" + uuid.NewString(),
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("assignment missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, d := newRoleHandler(ctrl)

		roleID, userID := uuid.New(), uuid.New()
		d.roles.EXPECT().FindByID(gomock.Any(), roleID).Return(&model.Role{ID: roleID, Name: "Treasurer"}, nil)
		d.users.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID}, nil)
		d.roles.EXPECT().FindAssignment(gomock.Any(), roleID, userID).Return(nil, domain.ErrRoleAssignmentNotFound)

		rec, env := serve(t, h.Detach, call{
			method:  http.MethodDelete,
			pattern: "/roles/{id}/users/{userID}",
			target:  "/roles/" + roleID.String() + "/users/" + userID.String(),
			userID:  uuid.New(),
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Role assignment not found", env.Message)
	})
}

func TestRoleHandler_AssignFromBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, d := newRoleHandler(ctrl)

	role := &model.Role{ID: uuid.New(), Name: "Treasurer"}
	user := &model.User{ID: uuid.New(), FirstName: "Ira"}
	d.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
	d.roles.EXPECT().HasChildren(gomock.Any(), role.ID).Return(false, nil)
	d.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	d.roles.EXPECT().Assign(gomock.Any(), role.ID, user.ID).Return(true, nil)
	d.history.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil)
	d.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&model.ActivityLog{ID: uuid.New(), Action: model.ActionAssigned}, nil)

	rec, env := serve(t, h.AssignFromBody, call{
		method:  http.MethodPost,
		pattern: "/roles/assign",
		target:  "/roles/assign",
		body:    strings.NewReader(`{"role_id":"` + role.ID.String() + `","user_ids":["` + user.ID.String() + `"]}`),
		userID:  uuid.New(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Role assigned", env.Message)
	assert.Contains(t, string(env.Data), model.ActionAssigned)
}

func TestRoleHandler_DetachFromBody(t *testing.T) {
	t.Run("role_id is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, _ := newRoleHandler(ctrl)

		rec, env := serve(t, h.DetachFromBody, call{
			method:  http.MethodPost,
			pattern: "/roles/detach",
			target:  "/roles/detach",
			body:    strings.NewReader(`{"user_id":"` + uuid.NewString() + `"}`),
			userID:  uuid.New(),
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, env.Errors, "role_id")
	})

	t.Run("removes the assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, d := newRoleHandler(ctrl)

		role := &model.Role{ID: uuid.New(), Name: "Treasurer"}
		user := &model.User{ID: uuid.New(), FirstName: "Ira"}
		assignment := &model.RoleUser{ID: uuid.New(), RoleID: role.ID, UserID: user.ID}
		d.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		d.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		d.roles.EXPECT().FindAssignment(gomock.Any(), role.ID, user.ID).Return(assignment, nil)
		d.roles.EXPECT().Unassign(gomock.Any(), assignment).Return(nil)
		d.history.EXPECT().CloseLatest(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		d.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(&model.ActivityLog{ID: uuid.New(), Action: model.ActionRemoved}, nil)

		rec, env := serve(t, h.DetachFromBody, call{
			method:  http.MethodPost,
			pattern: "/roles/detach",
			target:  "/roles/detach",
			body:    strings.NewReader(`{"role_id":"` + role.ID.String() + `","user_id":"` + user.ID.String() + `"}`),
			userID:  uuid.New(),
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Role removed", env.Message)
	})
}

func TestRoleHandler_AssignRejectsParentRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, d := newRoleHandler(ctrl)

	roleID := uuid.New()
	d.roles.EXPECT().FindByID(gomock.Any(), roleID).Return(&model.Role{ID: roleID, Name: "Officers"}, nil)
	d.roles.EXPECT().HasChildren(gomock.Any(), roleID).Return(true, nil)

	rec, env := serve(t, h.Assign, call{
		method:  http.MethodPost,
		pattern: "/roles/{id}/users",
		target:  "/roles/" + roleID.String() + "/users",
		body:    strings.NewReader(`{"user_ids":["` + uuid.NewString() + `"]}`),
		userID:  uuid.New(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Message, domain.ErrRoleNotAssignable.Error())
}

func TestRoleHandler_HistoryRequiresAffiliate(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newRoleHandler(ctrl)

	rec, env := serve(t, h.History, call{
		method:  http.MethodGet,
		pattern: "/roles/{id}/history",
		target:  "/roles/" + uuid.NewString() + "/history?type=affiliate",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "affiliate_id")
}

func TestRoleHandler_Selectable(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, d := newRoleHandler(ctrl)

	parent := uuid.New()
	d.roles.EXPECT().FindAll(gomock.Any()).Return([]model.Role{
		{ID: parent, Name: "Officers", Order: 1},
		{ID: uuid.New(), Name: "President", ParentRoleID: &parent, Order: 1},
	}, nil)

	rec, env := serve(t, h.Selectable, call{method: http.MethodGet, pattern: "/roles/selectable", target: "/roles/selectable"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "President")
	assert.NotContains(t, string(env.Data), "Officers")
}
