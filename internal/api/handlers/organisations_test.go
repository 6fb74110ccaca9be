package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganisations_Create(t *testing.T) {
	env := setupTestEnv(t)
	user := testutil.CreateTestUser(t, env.db)

	t.Run("creator becomes admin", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPost, "/organisations",
			map[string]string{"name": "Acme"}, env.token(t, user))
		rr := env.do(req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var org models.Organisation
		testutil.ParseJSONResponse(t, rr, &org)
		assert.Equal(t, "Acme", org.Name)

		var membership models.Membership
		require.NoError(t, env.db.Where("user_id = ? AND organisation_id = ?", user.ID, org.ID).
			First(&membership).Error)
		assert.Equal(t, models.RoleAdmin, membership.Role)
	})

	t.Run("missing name", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPost, "/organisations",
			map[string]string{}, env.token(t, user))
		assert.Equal(t, http.StatusBadRequest, env.do(req).Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		req := testutil.UnauthenticatedRequest(t, http.MethodPost, "/organisations",
			map[string]string{"name": "Acme"})
		assert.Equal(t, http.StatusUnauthorized, env.do(req).Code)
	})
}

func TestOrganisations_List(t *testing.T) {
	env := setupTestEnv(t)
	alice := testutil.CreateTestUser(t, env.db)
	bob := testutil.CreateTestUser(t, env.db)
	mine := testutil.CreateTestOrganisation(t, env.db, alice)
	testutil.CreateTestOrganisation(t, env.db, bob)

	req := testutil.AuthenticatedRequest(t, http.MethodGet, "/organisations", nil, env.token(t, alice))
	rr := env.do(req)

	require.Equal(t, http.StatusOK, rr.Code)

	var orgs []models.Organisation
	testutil.ParseJSONResponse(t, rr, &orgs)
	require.Len(t, orgs, 1)
	assert.Equal(t, mine.ID, orgs[0].ID)
}

func TestOrganisations_Get(t *testing.T) {
	env := setupTestEnv(t)
	member := testutil.CreateTestUser(t, env.db)
	outsider := testutil.CreateTestUser(t, env.db)
	org := testutil.CreateTestOrganisation(t, env.db, member)

	t.Run("member gets the organisation", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodGet,
			fmt.Sprintf("/organisations/%d", org.ID), nil, env.token(t, member))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)

		var orgs []models.Organisation
		testutil.ParseJSONResponse(t, rr, &orgs)
		require.Len(t, orgs, 1)
		assert.Equal(t, org.ID, orgs[0].ID)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodGet,
			fmt.Sprintf("/organisations/%d", org.ID), nil, env.token(t, outsider))
		rr := env.do(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"User is not in the organisation"}`, rr.Body.String())
	})
}

func TestOrganisations_Update(t *testing.T) {
	env := setupTestEnv(t)
	user := testutil.CreateTestUser(t, env.db)
	org := testutil.CreateTestOrganisation(t, env.db, user)

	t.Run("renames the organisation", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPatch,
			fmt.Sprintf("/organisations/%d", org.ID),
			map[string]string{"name": "Renamed"}, env.token(t, user))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)

		var updated models.Organisation
		testutil.ParseJSONResponse(t, rr, &updated)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("unknown organisation", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPatch, "/organisations/99999",
			map[string]string{"name": "Ghost"}, env.token(t, user))
		rr := env.do(req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Organisation not found"}`, rr.Body.String())
	})
}

func TestOrganisations_Delete(t *testing.T) {
	env := setupTestEnv(t)
	admin := testutil.CreateTestUser(t, env.db)
	plain := testutil.CreateTestUser(t, env.db)
	org := testutil.CreateTestOrganisation(t, env.db, admin)
	testutil.AddTestMember(t, env.db, org, plain, models.RoleUser)
	project := testutil.CreateTestProject(t, env.db, org)
	testutil.CreateTestTodo(t, env.db, project, admin)

	t.Run("plain member cannot delete", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodDelete,
			fmt.Sprintf("/organisations/%d", org.ID), nil, env.token(t, plain))
		rr := env.do(req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"error":"User is not an admin"}`, rr.Body.String())

		var n int64
		require.NoError(t, env.db.Model(&models.Organisation{}).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})

	t.Run("admin delete cascades", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodDelete,
			fmt.Sprintf("/organisations/%d", org.ID), nil, env.token(t, admin))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Organisation deleted"}`, rr.Body.String())

		for _, model := range []interface{}{
			&models.Organisation{}, &models.Membership{}, &models.Project{}, &models.Todo{},
		} {
			var n int64
			require.NoError(t, env.db.Model(model).Count(&n).Error)
			assert.Zero(t, n)
		}
	})
}

func TestOrganisations_Projects(t *testing.T) {
	env := setupTestEnv(t)
	member := testutil.CreateTestUser(t, env.db)
	outsider := testutil.CreateTestUser(t, env.db)
	org := testutil.CreateTestOrganisation(t, env.db, member)

	t.Run("member creates a project", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPost,
			fmt.Sprintf("/organisations/%d/projects", org.ID),
			map[string]string{"name": "Website", "description": "Marketing site"},
			env.token(t, member))
		rr := env.do(req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var project models.Project
		testutil.ParseJSONResponse(t, rr, &project)
		assert.Equal(t, "Website", project.Name)
		assert.Equal(t, org.ID, project.OrganisationID)
	})

	t.Run("non-member cannot create", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPost,
			fmt.Sprintf("/organisations/%d/projects", org.ID),
			map[string]string{"name": "Intruder", "description": ""},
			env.token(t, outsider))
		rr := env.do(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"User is not in the organisation"}`, rr.Body.String())
	})

	t.Run("member lists projects", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodGet,
			fmt.Sprintf("/organisations/%d/projects", org.ID), nil, env.token(t, member))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)

		var projects []models.Project
		testutil.ParseJSONResponse(t, rr, &projects)
		assert.Len(t, projects, 1)
	})

	t.Run("non-member cannot list", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodGet,
			fmt.Sprintf("/organisations/%d/projects", org.ID), nil, env.token(t, outsider))
		assert.Equal(t, http.StatusUnauthorized, env.do(req).Code)
	})
}

func TestOrganisations_Members(t *testing.T) {
	env := setupTestEnv(t)
	admin := testutil.CreateTestUser(t, env.db)
	joiner := testutil.CreateTestUser(t, env.db)
	org := testutil.CreateTestOrganisation(t, env.db, admin)

	t.Run("add member", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPost,
			fmt.Sprintf("/organisations/%d/members", org.ID),
			map[string]interface{}{"user_id": joiner.ID, "role": models.RoleUser},
			env.token(t, admin))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"User added successfully"}`, rr.Body.String())
	})

	t.Run("adding twice is rejected", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPost,
			fmt.Sprintf("/organisations/%d/members", org.ID),
			map[string]interface{}{"user_id": joiner.ID, "role": models.RoleUser},
			env.token(t, admin))
		rr := env.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"User is already a member"}`, rr.Body.String())
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPost,
			fmt.Sprintf("/organisations/%d/members", org.ID),
			map[string]interface{}{"user_id": 99999, "role": models.RoleUser},
			env.token(t, admin))
		rr := env.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid user or organisation"}`, rr.Body.String())
	})

	t.Run("list members", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodGet,
			fmt.Sprintf("/organisations/%d/members", org.ID), nil, env.token(t, admin))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)

		var members []models.Membership
		testutil.ParseJSONResponse(t, rr, &members)
		assert.Len(t, members, 2)
	})

	t.Run("update member role", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodPut,
			fmt.Sprintf("/organisations/%d/members", org.ID),
			map[string]interface{}{"user_id": joiner.ID, "role": models.RoleAdmin},
			env.token(t, admin))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"User updated successfully"}`, rr.Body.String())

		var membership models.Membership
		require.NoError(t, env.db.Where("user_id = ? AND organisation_id = ?", joiner.ID, org.ID).
			First(&membership).Error)
		assert.Equal(t, models.RoleAdmin, membership.Role)
	})

	t.Run("remove member", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodDelete,
			fmt.Sprintf("/organisations/%d/members", org.ID),
			map[string]interface{}{"user_id": joiner.ID},
			env.token(t, admin))
		rr := env.do(req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"User deleted successfully"}`, rr.Body.String())

		var n int64
		require.NoError(t, env.db.Model(&models.Membership{}).
			Where("user_id = ? AND organisation_id = ?", joiner.ID, org.ID).Count(&n).Error)
		assert.Zero(t, n)
	})
}
