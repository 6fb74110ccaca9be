package store_test

import (
	"context"
	"testing"

	"github.com/ridwansameer/simple-todo-api/internal/database/models"
	"github.com/ridwansameer/simple-todo-api/internal/store"
	"github.com/ridwansameer/simple-todo-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) (*store.Store, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })
	return store.NewStore(db), db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestStore_CreateOrganisation(t *testing.T) {
	st, db := setupStore(t)
	ctx := context.Background()

	t.Run("creator becomes ADMIN in the same transaction", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)

		org, err := st.CreateOrganisation(ctx, "Acme", user.ID)
		require.NoError(t, err)
		require.NotZero(t, org.ID)

		var membership models.Membership
		require.NoError(t, db.Where("user_id = ? AND organisation_id = ?", user.ID, org.ID).
			First(&membership).Error)
		assert.Equal(t, models.RoleAdmin, membership.Role)
	})

	t.Run("nothing persists when the membership insert fails", func(t *testing.T) {
		orgsBefore := count(t, db, &models.Organisation{})

		// user id 0 violates the membership foreign key
		_, err := st.CreateOrganisation(ctx, "Doomed", 0)
		require.Error(t, err)

		assert.Equal(t, orgsBefore, count(t, db, &models.Organisation{}))
	})
}

func TestStore_OrganisationsForUser(t *testing.T) {
	st, db := setupStore(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	mine := testutil.CreateTestOrganisation(t, db, user)
	testutil.CreateTestOrganisation(t, db, other)

	orgs, err := st.OrganisationsForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, mine.ID, orgs[0].ID)
}

func TestStore_DeleteOrganisation_Cascades(t *testing.T) {
	st, db := setupStore(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	org := testutil.CreateTestOrganisation(t, db, user)
	project := testutil.CreateTestProject(t, db, org)
	todo := testutil.CreateTestTodo(t, db, project, user)
	testutil.CreateTestComment(t, db, todo, user)
	require.NoError(t, st.CreateAssignments(ctx, todo.ID, []uint{user.ID}))

	require.NoError(t, st.DeleteOrganisation(ctx, org.ID))

	assert.Zero(t, count(t, db, &models.Membership{}))
	assert.Zero(t, count(t, db, &models.Project{}))
	assert.Zero(t, count(t, db, &models.Todo{}))
	assert.Zero(t, count(t, db, &models.Assignment{}))
	assert.Zero(t, count(t, db, &models.Comment{}))

	// the user itself is untouched
	assert.Equal(t, int64(1), count(t, db, &models.User{}))
}

func TestStore_DeleteUser_DisassociatesAuthoredRows(t *testing.T) {
	st, db := setupStore(t)
	ctx := context.Background()

	author := testutil.CreateTestUser(t, db)
	admin := testutil.CreateTestUser(t, db)
	org := testutil.CreateTestOrganisation(t, db, admin)
	testutil.AddTestMember(t, db, org, author, models.RoleUser)
	project := testutil.CreateTestProject(t, db, org)
	todo := testutil.CreateTestTodo(t, db, project, author)
	comment := testutil.CreateTestComment(t, db, todo, author)
	require.NoError(t, st.CreateAssignments(ctx, todo.ID, []uint{author.ID}))

	require.NoError(t, st.DeleteUser(ctx, author.ID))

	// memberships and assignments go with the user
	assert.Equal(t, int64(1), count(t, db, &models.Membership{}))
	assert.Zero(t, count(t, db, &models.Assignment{}))

	// authored rows survive with created_by nulled out
	var keptTodo models.Todo
	require.NoError(t, db.First(&keptTodo, todo.ID).Error)
	assert.Nil(t, keptTodo.CreatedBy)

	var keptComment models.Comment
	require.NoError(t, db.First(&keptComment, comment.ID).Error)
	assert.Nil(t, keptComment.CreatedBy)
}

func TestStore_Assignments(t *testing.T) {
	st, db := setupStore(t)
	ctx := context.Background()

	admin := testutil.CreateTestUser(t, db)
	userA := testutil.CreateTestUser(t, db)
	userB := testutil.CreateTestUser(t, db)
	org := testutil.CreateTestOrganisation(t, db, admin)
	project := testutil.CreateTestProject(t, db, org)
	todo := testutil.CreateTestTodo(t, db, project, admin)

	t.Run("batch insert", func(t *testing.T) {
		require.NoError(t, st.CreateAssignments(ctx, todo.ID, []uint{userA.ID, userB.ID}))

		assignments, err := st.AssignmentsByTodo(ctx, todo.ID)
		require.NoError(t, err)
		assert.Len(t, assignments, 2)
	})

	t.Run("batch insert is all-or-nothing", func(t *testing.T) {
		other := testutil.CreateTestTodo(t, db, project, admin)

		// second id does not exist, the whole batch must roll back
		err := st.CreateAssignments(ctx, other.ID, []uint{admin.ID, 99999})
		require.Error(t, err)

		assignments, err := st.AssignmentsByTodo(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, assignments)
	})

	t.Run("delete skips unassigned ids", func(t *testing.T) {
		// admin was never assigned; removing them alongside userA is a no-op
		// for admin and must not disturb userB
		require.NoError(t, st.DeleteAssignments(ctx, todo.ID, []uint{userA.ID, admin.ID}))

		assignments, err := st.AssignmentsByTodo(ctx, todo.ID)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.Equal(t, userB.ID, assignments[0].UserID)
	})
}

func TestStore_Comments(t *testing.T) {
	st, db := setupStore(t)
	ctx := context.Background()

	user := testutil.CreateTestUser(t, db)
	org := testutil.CreateTestOrganisation(t, db, user)
	project := testutil.CreateTestProject(t, db, org)
	todo := testutil.CreateTestTodo(t, db, project, user)

	t.Run("missing comment is ErrNotFound", func(t *testing.T) {
		_, err := st.CommentByID(ctx, 99999)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update changes content", func(t *testing.T) {
		comment := testutil.CreateTestComment(t, db, todo, user)

		require.NoError(t, st.UpdateCommentContent(ctx, comment.ID, "edited"))

		got, err := st.CommentByID(ctx, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Content)
	})
}

func TestStore_CreateUser_DuplicateEmail(t *testing.T) {
	st, db := setupStore(t)
	ctx := context.Background()

	existing := testutil.CreateTestUser(t, db)

	dup := models.User{
		Name:         "Dup",
		Email:        existing.Email,
		PasswordHash: "hash",
	}
	err := st.CreateUser(ctx, &dup)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}
