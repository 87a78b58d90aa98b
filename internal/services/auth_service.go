package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/helpinghands/site-backend/internal/config"
	"github.com/helpinghands/site-backend/internal/dto"
	"github.com/helpinghands/site-backend/internal/mail"
	"github.com/helpinghands/site-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer mail.Mailer
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailer mail.Mailer) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: mailer}
}

// SignIn verifies the credentials and returns a signed session token. The
// same error comes back for an unknown email and a wrong password, so the
// response never reveals whether an account exists.
func (s *AuthService) SignIn(req *dto.SignInRequest) (string, error) {
	email := normalizeEmail(req.Email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(&user)
}

// Verify validates a bearer token's signature and expiry and returns the
// embedded user identity.
func (s *AuthService) Verify(tokenString string) (*dto.UserResponse, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	var user models.User
	if err := s.db.First(&user, "id = ?", sub).Error; err != nil {
		return nil, ErrInvalidToken
	}

	return &dto.UserResponse{ID: user.ID, Email: email}, nil
}

// RequestPasswordReset generates a single-use reset token, stores its hash
// with a short expiry, and mails a reset link. A mail failure fails the
// whole request; no partial-success state is kept.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = normalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	rawToken := hex.EncodeToString(rawBytes)
	tokenHash := hashToken(rawToken)
	expiry := time.Now().Add(s.cfg.ResetTokenExpiry)

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"reset_token_hash":   tokenHash,
		"reset_token_expiry": expiry,
	}).Error; err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := s.cfg.PublicURL + "/admin/reset-password?token=" + rawToken
	body := "A password reset was requested for your account.\r\n\r\n" +
		"Open the link below to choose a new password. The link expires in " +
		s.cfg.ResetTokenExpiry.String() + ".\r\n\r\n" + link + "\r\n\r\n" +
		"If you did not request this, you can ignore this email."

	if err := s.mailer.Send(user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// ResetPassword consumes a reset token and sets a new password. The stored
// token hash and expiry are cleared on success, so a token works exactly
// once.
func (s *AuthService) ResetPassword(rawToken, newPassword string) error {
	if rawToken == "" || len(newPassword) < 8 {
		return errors.New("token required and password must be at least 8 characters")
	}

	tokenHash := hashToken(rawToken)

	var user models.User
	if err := s.db.Where("reset_token_hash = ?", tokenHash).First(&user).Error; err != nil {
		return ErrInvalidToken
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&user).Updates(map[string]interface{}{
		"password_hash":      string(hash),
		"reset_token_hash":   nil,
		"reset_token_expiry": nil,
	}).Error
}

// SeedAdmin creates the admin account from config when no user with that
// email exists yet. Accounts have no signup flow, so this is the only way
// one comes into being.
func (s *AuthService) SeedAdmin() error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	email := normalizeEmail(s.cfg.AdminEmail)

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
