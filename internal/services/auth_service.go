package services

import (
	"fmt"
	"strings"
	"time"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService struct {
	Users      repositories.UserRepository
	Secret     []byte
	TTL        time.Duration
	BcryptCost int
	RequestID  string
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (s AuthService) cost() int {
	if s.BcryptCost > 0 {
		return s.BcryptCost
	}
	return bcrypt.DefaultCost
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

func (s AuthService) Register(in RegisterInput) (AuthResult, error) {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Email = utils.NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return AuthResult{}, domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	if !utils.IsEmail(in.Email) {
		return AuthResult{}, domain.ValidationError{Field: "email", Msg: "format email tidak valid"}
	}
	if len(in.Password) < minPasswordLength {
		return AuthResult{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("minimal %d karakter", minPasswordLength)}
	}

	exists, err := s.Users.EmailExists(in.Email)
	if err != nil {
		return AuthResult{}, domain.InternalError{Err: err}
	}
	if exists {
		return AuthResult{}, domain.ConflictError{Resource: "user", Msg: "email sudah terdaftar"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}

	u := models.User{Name: in.Name, Email: in.Email, Phone: in.Phone, Role: domain.RoleUser, PasswordHash: string(hash)}
	id, err := s.Users.Create(u)
	if err != nil {
		return AuthResult{}, domain.InternalError{Err: err}
	}
	u.ID = id
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", id))
	return s.issue(u)
}

var errBadCredentials = domain.UnauthorizedError{Msg: "email atau password salah"}

func (s AuthService) Login(email, password string) (AuthResult, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return AuthResult{}, errBadCredentials
		}
		return AuthResult{}, domain.InternalError{Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, errBadCredentials
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return s.issue(u)
}

func (s AuthService) Me(rc domain.RequestContext) (models.User, error) {
	u, err := s.Users.GetByID(int64(rc.UserID))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, err
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return u, nil
}

func (s AuthService) issue(u models.User) (AuthResult, error) {
	token, err := utils.GenerateToken(s.Secret, u.ID, u.Role, s.ttl())
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	return AuthResult{Token: token, User: u}, nil
}
