package authService

import (
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioGolang/internal/api/auth"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
	jwtPkg "PortfolioGolang/pkg/jwt"
)

func (s *authService) RegisterUser(c context.Context, req auth.RegisterRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	hashedPass, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	user := entity.User{
		ID:       userID,
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPass,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit user registration")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("User registered")

	return nil
}

func (s *authService) Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Login attempt for unknown email")
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "Password mismatch",
		}).Warn("Login attempt with wrong password")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	token, expired, err := jwtPkg.Sign(makeUserData(user), time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Token created")

	return auth.LoginResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}

func (s *authService) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()

	authURL, err := url.Parse(gConfig.AuthCodeURL("state-token"))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to build Google auth URL")
		return nil, err
	}

	return authURL, nil
}

// LoginGoogleCallback signs in an existing user by their Google email, or
// registers them first with a random credential that can only be replaced
// through the password-reset flow.
func (s *authService) LoginGoogleCallback(ctx *fiber.Ctx, code string) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(contextPkg.FromFiberCtx(ctx))
	c := contextPkg.FromFiberCtx(ctx)

	info, err := s.googleProvider.GetUserInfo(ctx, code)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get Google user info")
		return auth.LoginResponse{}, err
	}

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, info.Email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to get user by email")
			return auth.LoginResponse{}, err
		}

		user, err = s.registerGoogleUser(c, info.Email, info.Name)
		if err != nil {
			return auth.LoginResponse{}, err
		}
	}

	token, expired, err := jwtPkg.Sign(makeUserData(user), time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}

func (s *authService) registerGoogleUser(c context.Context, email, name string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(true)
	if err != nil {
		return entity.User{}, err
	}
	defer repo.Rollback()

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.User{}, err
	}

	// No usable password; Google users reset it through the OTP flow if
	// they want email login.
	randomSecret, err := s.utils.GenerateOTP()
	if err != nil {
		return entity.User{}, err
	}
	hashedPass, err := s.bcryptUtils.HashPassword(userID + randomSecret)
	if err != nil {
		return entity.User{}, err
	}

	username := name
	if username == "" {
		username = email
	}

	user := entity.User{
		ID:       userID,
		Username: username,
		Email:    email,
		Password: hashedPass,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		return entity.User{}, err
	}

	if err := repo.Commit(); err != nil {
		return entity.User{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("Registered user from Google profile")

	return user, nil
}
