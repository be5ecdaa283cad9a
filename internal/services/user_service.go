package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/bloglist-be/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id string) (models.User, error)
	GetAllUsers() ([]models.User, error)
	CreateUser(username, name, password string) (models.User, error)
	AuthenticateUser(username, password string) (models.User, error)
}

// dummyHash is a valid bcrypt digest compared against when the username does
// not exist, so login takes the same time for unknown and known usernames.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService provides business logic for user management.
type UserService struct {
	db       *sql.DB
	eventSvc EventServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, eventSvc EventServiceProvider) *UserService {
	return &UserService{db: db, eventSvc: eventSvc}
}

// GetUserByID retrieves a single user by their ID, with owned blogs attached.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, name, password_hash, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, err
	}

	blogs, err := s.blogRefsFor(user.ID)
	if err != nil {
		return models.User{}, err
	}
	user.Blogs = blogs
	return user, nil
}

// GetAllUsers retrieves every user with their owned blogs expanded.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	rows, err := s.db.Query("SELECT id, username, name, created_at FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Name, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		blogs, err := s.blogRefsFor(users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Blogs = blogs
	}
	return users, nil
}

// CreateUser creates a new user, hashing their password. The username must
// be unique; a collision fails without mutating state.
func (s *UserService) CreateUser(username, name, password string) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Blogs:        []models.BlogRef{},
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.Exec("INSERT INTO users(id, username, name, password_hash, created_at) VALUES(?, ?, ?, ?, ?)",
		user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}

	s.recordEvent("user_registered", "New user registered: "+user.Username)
	return user, nil
}

// AuthenticateUser verifies a user's credentials. Unknown usernames and wrong
// passwords produce the same error so neither can be told apart by a client.
func (s *UserService) AuthenticateUser(username, password string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, name, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Burn a comparison anyway to keep response timing uniform.
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}

	s.recordEvent("user_login", "User logged in: "+user.Username)
	return user, nil
}

func (s *UserService) blogRefsFor(userID string) ([]models.BlogRef, error) {
	rows, err := s.db.Query("SELECT id, title, author, url FROM blogs WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []models.BlogRef{}
	for rows.Next() {
		var ref models.BlogRef
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Author, &ref.URL); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (s *UserService) recordEvent(eventType, message string) {
	if s.eventSvc == nil {
		return
	}
	if err := s.eventSvc.CreateEvent(eventType, "info", message); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
