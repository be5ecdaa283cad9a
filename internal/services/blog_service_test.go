package services_test

import (
	"database/sql"
	"testing"

	"github.com/isdelr/bloglist-be/internal/models"
	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlogService(t *testing.T) (*services.BlogService, *services.UserService, *sql.DB) {
	t.Helper()
	db := newTestDB(t)
	eventSvc := services.NewEventService(db, nil)
	return services.NewBlogService(db, eventSvc), services.NewUserService(db, eventSvc), db
}

func createOwner(t *testing.T, users *services.UserService) models.User {
	t.Helper()
	owner, err := users.CreateUser("root", "Superuser", "secretpassword")
	require.NoError(t, err)
	return owner
}

func TestBlogService_CreateBlog(t *testing.T) {
	blogs, users, _ := newBlogService(t)
	owner := createOwner(t, users)

	blog, err := blogs.CreateBlog(owner.ID, models.Blog{
		Title:  "Go Proverbs",
		Author: "Rob Pike",
		URL:    "https://go-proverbs.github.io",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, blog.ID)
	assert.Equal(t, 0, blog.Likes, "likes default to zero when omitted")
	require.NotNil(t, blog.User)
	assert.Equal(t, owner.ID, blog.User.ID)
	assert.Equal(t, "root", blog.User.Username)
}

func TestBlogService_CreateBlog_KeepsExplicitLikes(t *testing.T) {
	blogs, users, _ := newBlogService(t)
	owner := createOwner(t, users)

	blog, err := blogs.CreateBlog(owner.ID, models.Blog{Title: "t", URL: "u", Likes: 42})
	require.NoError(t, err)
	assert.Equal(t, 42, blog.Likes)
}

func TestBlogService_GetBlogByID_MalformedID(t *testing.T) {
	blogs, _, _ := newBlogService(t)

	_, err := blogs.GetBlogByID("definitely-not-a-uuid")
	assert.ErrorIs(t, err, models.ErrMalformedID)
}

func TestBlogService_GetBlogByID_NotFound(t *testing.T) {
	blogs, _, _ := newBlogService(t)

	_, err := blogs.GetBlogByID("8b7acb5e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBlogService_UpdateBlog(t *testing.T) {
	blogs, users, _ := newBlogService(t)
	owner := createOwner(t, users)

	created, err := blogs.CreateBlog(owner.ID, models.Blog{Title: "Old", URL: "https://old.example"})
	require.NoError(t, err)

	updated, err := blogs.UpdateBlog(created.ID, models.Blog{
		Title:  "New",
		Author: "Someone",
		URL:    "https://new.example",
		Likes:  7,
	})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, 7, updated.Likes)
	require.NotNil(t, updated.User)
	assert.Equal(t, owner.ID, updated.User.ID, "ownership is never reassigned")
}

func TestBlogService_UpdateBlog_NotFound(t *testing.T) {
	blogs, _, _ := newBlogService(t)

	_, err := blogs.UpdateBlog("8b7acb5e-0000-0000-0000-000000000000", models.Blog{Title: "t", URL: "u"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBlogService_DeleteBlog(t *testing.T) {
	blogs, users, db := newBlogService(t)
	owner := createOwner(t, users)

	created, err := blogs.CreateBlog(owner.ID, models.Blog{Title: "t", URL: "u"})
	require.NoError(t, err)

	require.NoError(t, blogs.DeleteBlog(created.ID, owner.ID))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count))
	assert.Equal(t, 0, count)

	// Gone from the owner's collection as well.
	ownerAfter, err := users.GetUserByID(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, ownerAfter.Blogs)
}

func TestBlogService_DeleteBlog_Idempotent(t *testing.T) {
	blogs, users, _ := newBlogService(t)
	owner := createOwner(t, users)

	// Deleting an id that never existed still succeeds.
	err := blogs.DeleteBlog("8b7acb5e-0000-0000-0000-000000000000", owner.ID)
	assert.NoError(t, err)
}

func TestBlogService_DeleteBlog_NotOwner(t *testing.T) {
	blogs, users, db := newBlogService(t)
	owner := createOwner(t, users)
	other, err := users.CreateUser("mallory", "", "secretpassword")
	require.NoError(t, err)

	created, err := blogs.CreateBlog(owner.ID, models.Blog{Title: "t", URL: "u"})
	require.NoError(t, err)

	err = blogs.DeleteBlog(created.ID, other.ID)
	assert.ErrorIs(t, err, models.ErrNotOwner)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count))
	assert.Equal(t, 1, count, "forbidden delete must leave state unchanged")
}

func TestBlogService_GetAllBlogs_ExpandsOwner(t *testing.T) {
	blogs, users, _ := newBlogService(t)
	owner := createOwner(t, users)

	_, err := blogs.CreateBlog(owner.ID, models.Blog{Title: "a", URL: "ua"})
	require.NoError(t, err)
	_, err = blogs.CreateBlog(owner.ID, models.Blog{Title: "b", URL: "ub"})
	require.NoError(t, err)

	all, err := blogs.GetAllBlogs()
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, blog := range all {
		require.NotNil(t, blog.User)
		assert.Equal(t, "root", blog.User.Username)
	}
}
