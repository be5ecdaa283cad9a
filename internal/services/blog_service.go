package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/bloglist-be/internal/models"
	"github.com/rs/zerolog/log"
)

// BlogServiceProvider defines the interface for blog services.
type BlogServiceProvider interface {
	GetAllBlogs() ([]models.Blog, error)
	GetBlogByID(id string) (models.Blog, error)
	CreateBlog(ownerID string, blog models.Blog) (models.Blog, error)
	UpdateBlog(id string, blog models.Blog) (models.Blog, error)
	DeleteBlog(id, callerID string) error
}

// BlogService provides business logic for blog management.
type BlogService struct {
	db       *sql.DB
	eventSvc EventServiceProvider
}

// NewBlogService creates a new BlogService.
func NewBlogService(db *sql.DB, eventSvc EventServiceProvider) *BlogService {
	return &BlogService{db: db, eventSvc: eventSvc}
}

const blogSelect = `
	SELECT b.id, b.title, b.author, b.url, b.likes, b.created_at,
	       u.id, u.username, u.name
	FROM blogs b
	JOIN users u ON u.id = b.user_id`

// GetAllBlogs retrieves every blog with its owner expanded.
func (s *BlogService) GetAllBlogs() ([]models.Blog, error) {
	rows, err := s.db.Query(blogSelect + " ORDER BY b.created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

// GetBlogByID retrieves a single blog with its owner expanded.
func (s *BlogService) GetBlogByID(id string) (models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Blog{}, models.ErrMalformedID
	}

	row := s.db.QueryRow(blogSelect+" WHERE b.id = ?", id)
	blog, err := scanBlog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, models.ErrNotFound
		}
		return models.Blog{}, err
	}
	return blog, nil
}

// CreateBlog persists a new blog owned by ownerID. The blogs.user_id column
// is the owner's side of the relation, so the new blog joins the owner's
// collection in the same write.
func (s *BlogService) CreateBlog(ownerID string, blog models.Blog) (models.Blog, error) {
	blog.ID = uuid.New().String()
	blog.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec("INSERT INTO blogs(id, title, author, url, likes, user_id, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)",
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes, ownerID, blog.CreatedAt)
	if err != nil {
		return models.Blog{}, err
	}

	s.recordEvent("blog_created", "New blog created: "+blog.Title)
	return s.GetBlogByID(blog.ID)
}

// UpdateBlog replaces the mutable fields of an existing blog. Ownership is
// never reassigned here.
func (s *BlogService) UpdateBlog(id string, blog models.Blog) (models.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Blog{}, models.ErrMalformedID
	}

	res, err := s.db.Exec("UPDATE blogs SET title = ?, author = ?, url = ?, likes = ? WHERE id = ?",
		blog.Title, blog.Author, blog.URL, blog.Likes, id)
	if err != nil {
		return models.Blog{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Blog{}, err
	}
	if affected == 0 {
		return models.Blog{}, models.ErrNotFound
	}
	return s.GetBlogByID(id)
}

// DeleteBlog removes a blog if the caller owns it. Deleting an id that does
// not exist is a no-op success, so deletes are idempotent.
func (s *BlogService) DeleteBlog(id, callerID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.ErrMalformedID
	}

	var ownerID, title string
	err := s.db.QueryRow("SELECT user_id, title FROM blogs WHERE id = ?", id).Scan(&ownerID, &title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if ownerID != callerID {
		return models.ErrNotOwner
	}

	if _, err := s.db.Exec("DELETE FROM blogs WHERE id = ?", id); err != nil {
		return err
	}

	s.recordEvent("blog_deleted", "Blog deleted: "+title)
	return nil
}

func (s *BlogService) recordEvent(eventType, message string) {
	if s.eventSvc == nil {
		return
	}
	if err := s.eventSvc.CreateEvent(eventType, "info", message); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlog(row rowScanner) (models.Blog, error) {
	var blog models.Blog
	owner := &models.UserRef{}
	err := row.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes, &blog.CreatedAt,
		&owner.ID, &owner.Username, &owner.Name)
	if err != nil {
		return models.Blog{}, err
	}
	blog.User = owner
	return blog, nil
}
