package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"storefront/internal/metrics"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ResolveOutcome tells the caller how a profile was obtained. The
// three-way split keeps "row exists", "row was just created" and
// "backend is unreachable" distinguishable instead of collapsing them
// into a single default profile.
type ResolveOutcome int

const (
	// ResolveFound means an existing profile row was read.
	ResolveFound ResolveOutcome = iota
	// ResolveCreated means no row existed and a default one was persisted.
	ResolveCreated
	// ResolveDegraded means the read failed and a transient, unpersisted
	// default profile is being returned instead.
	ResolveDegraded
)

func (o ResolveOutcome) String() string {
	switch o {
	case ResolveFound:
		return "found"
	case ResolveCreated:
		return "created"
	case ResolveDegraded:
		return "degraded"
	}
	return "unknown"
}

// AuthService handles registration, login, token validation, profile
// resolution and the admin approval workflow.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// RegisterRequest carries a signup payload. RequestAdmin marks a signup
// made through the admin console; those accounts start as pending_admin
// and stay locked out of the admin area until approved.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

// Register creates a new user. requestAdmin selects the starting role.
func (s *AuthService) Register(req RegisterRequest, requestAdmin bool) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s' already registered", req.Email)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleUser
	if requestAdmin {
		role = models.RolePendingAdmin
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login authenticates a user by email and password and returns a signed
// JWT together with the resolved user.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return tokenString, user, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// ResolveProfile maps an authenticated identity onto its profile row.
// A missing row is synthesized as a plain-user profile, persisted, and
// reported as ResolveCreated. A failing read falls back to an
// unpersisted default and is reported as ResolveDegraded; resolution
// itself never returns an error to the login path.
func (s *AuthService) ResolveProfile(id, email string) (*models.User, ResolveOutcome) {
	user, err := s.userRepo.GetByID(id)
	if err == nil {
		return user, ResolveFound
	}

	fallback := &models.User{
		ID:        id,
		Email:     email,
		FirstName: emailLocalPart(email),
		Role:      models.RoleUser,
	}

	if errors.Is(err, repositories.ErrNotFound) {
		if createErr := s.userRepo.Create(fallback); createErr != nil {
			log.Printf("Failed to persist synthesized profile for %s: %v", id, createErr)
			return fallback, ResolveDegraded
		}
		return fallback, ResolveCreated
	}

	log.Printf("Profile read failed for %s, serving degraded default: %v", id, err)
	return fallback, ResolveDegraded
}

// UpdateProfile mutates the name fields only. The role field can never
// be changed through this path.
func (s *AuthService) UpdateProfile(id, firstName, lastName string) (*models.User, error) {
	if err := s.userRepo.UpdateNames(id, firstName, lastName); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return user, nil
}

// ListPendingAdmins returns every account awaiting admin approval.
func (s *AuthService) ListPendingAdmins() ([]models.User, error) {
	return s.userRepo.ListByRole(models.RolePendingAdmin)
}

// ApproveAdmin promotes a pending_admin account to admin.
func (s *AuthService) ApproveAdmin(id string) error {
	return s.changeRole(id, models.RoleAdmin)
}

// RejectAdmin demotes a pending_admin account back to a plain user.
func (s *AuthService) RejectAdmin(id string) error {
	return s.changeRole(id, models.RoleUser)
}

// changeRole applies a role transition, rejecting anything outside the
// guarded transition table.
func (s *AuthService) changeRole(id string, next models.Role) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to load user for role change: %w", err)
	}
	if !user.Role.CanTransitionTo(next) {
		return fmt.Errorf("role transition %s -> %s is not permitted", user.Role, next)
	}
	if err := s.userRepo.UpdateRole(id, next); err != nil {
		return fmt.Errorf("failed to change role: %w", err)
	}
	return nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
