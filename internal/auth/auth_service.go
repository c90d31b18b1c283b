package auth

import (
	"context"
	"strings"
	"time"

	autherrors "go-payroll/internal/auth/errors"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/session"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context) error
	Check(ctx context.Context) (CheckResponse, error)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	ListUsers(ctx context.Context) ([]UserResponse, error)
	EnsureAdmin(ctx context.Context, name, email, password string) (bool, error)
}

type Options struct {
	Store      session.Store
	Tokens     *session.TokenIssuer
	TTL        time.Duration
	Audit      bootstrap.AuditLogger
	BcryptCost int
	Now        func() time.Time
}

type service struct {
	repo   Repository
	store  session.Store
	tokens *session.TokenIssuer
	ttl    time.Duration
	audit  bootstrap.AuditLogger
	cost   int
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	if opts.Audit == nil {
		opts.Audit = bootstrap.NopAuditLogger{}
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		repo:   repo,
		store:  opts.Store,
		tokens: opts.Tokens,
		ttl:    opts.TTL,
		audit:  opts.Audit,
		cost:   opts.BcryptCost,
		now:    opts.Now,
		logger: l,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return LoginResponse{}, autherrors.ErrCredentialsRequired
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if dberr.IsNotFound(err) {
			s.logger.Info("login unknown email", zap.String("email", email))
			return LoginResponse{}, autherrors.ErrUserNotFound
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Info("login invalid password", zap.String("user_id", user.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidPassword
	}

	sess := session.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		s.logger.Error("login save session failed", zap.Error(err))
		return LoginResponse{}, err
	}

	token, err := s.tokens.Issue(sess.ID, sess.UserID, s.ttl)
	if err != nil {
		s.logger.Error("login issue token failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if err := s.repo.Touch(ctx, user.ID.String()); err != nil {
		s.logger.Warn("login touch user failed", zap.Error(err))
	}

	s.logger.Info("login success", zap.String("user_id", sess.UserID), zap.String("role", sess.Role))
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "LOGIN",
		Message: "User logged in",
		Meta:    map[string]any{"user_id": sess.UserID, "session_id": sess.ID},
	})

	return LoginResponse{User: mapToResponse(*user, false), Token: token}, nil
}

// Logout menghapus session milik principal; tanpa session tetap dianggap sukses.
func (s *service) Logout(ctx context.Context) error {
	p, ok := contextutil.GetPrincipal(ctx)
	if !ok || p.SessionID == "" {
		return nil
	}
	if err := s.store.Delete(ctx, p.SessionID); err != nil {
		s.logger.Error("logout delete session failed", zap.String("session_id", p.SessionID), zap.Error(err))
		return err
	}
	s.logger.Info("logout success", zap.String("user_id", p.UserID))
	return nil
}

func (s *service) Check(ctx context.Context) (CheckResponse, error) {
	p, ok := contextutil.GetPrincipal(ctx)
	if !ok {
		return CheckResponse{}, nil
	}

	user, err := s.repo.FindByID(ctx, p.UserID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return CheckResponse{}, nil
		}
		return CheckResponse{}, err
	}

	resp := mapToResponse(*user, false)
	return CheckResponse{Authenticated: true, User: &resp}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !IsValidRole(role) {
		return UserResponse{}, autherrors.ErrInvalidRole
	}

	email := normalizeEmail(req.Email)
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, autherrors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if dberr.IsUniqueViolation(err, "uq_users_email", "users.email") {
			return UserResponse{}, autherrors.ErrEmailAlreadyExists
		}
		s.logger.Error("register persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", role),
		zap.String("by", contextutil.GetUserID(ctx)),
	)
	return mapToResponse(*user, false), nil
}

func (s *service) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	p, ok := contextutil.GetPrincipal(ctx)
	if !ok {
		return autherrors.ErrUnauthenticated
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return autherrors.ErrPasswordsRequired
	}
	if len(req.NewPassword) < MinPasswordLength {
		return autherrors.ErrPasswordTooShort
	}

	user, err := s.repo.FindByID(ctx, p.UserID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrCurrentPasswordIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, p.UserID, string(hash)); err != nil {
		if dberr.IsNotFound(err) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	s.logger.Info("change password success", zap.String("user_id", p.UserID))
	return nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u, true)
	}
	return res, nil
}

// EnsureAdmin membuat akun admin awal kalau email tersebut belum terdaftar.
func (s *service) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = normalizeEmail(email)
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil || exists {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return false, err
	}
	err = s.repo.Create(ctx, &User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	s.logger.Info("seed admin created", zap.String("email", email))
	return true, nil
}

func mapToResponse(u User, withCreatedAt bool) UserResponse {
	resp := UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if withCreatedAt {
		resp.CreatedAt = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
