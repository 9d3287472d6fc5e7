package commands

import (
	"context"
	"time"

	"gym-booking/internal/domain/user"
	reqdto "gym-booking/internal/handler/dto/request"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/jwt"
	"gym-booking/internal/pkg/password"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(userView.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      userView.ID,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.UserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || userView == nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	return userView, nil
}
