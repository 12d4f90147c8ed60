package authService

import (
	"context"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"PortfolioGolang/internal/api/auth"
	authRepository "PortfolioGolang/internal/api/auth/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/bcrypt"
	"PortfolioGolang/pkg/google"
	"PortfolioGolang/pkg/redis"
	"PortfolioGolang/pkg/smtp"
	"PortfolioGolang/pkg/utils"
)

type IAuthService interface {
	RegisterUser(c context.Context, req auth.RegisterRequest) error
	Login(c context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	LoginGoogle() (*url.URL, error)
	LoginGoogleCallback(ctx *fiber.Ctx, code string) (auth.LoginResponse, error)
	ForgotPassword(c context.Context, req auth.ForgotPasswordRequest) error
	ResetPassword(c context.Context, req auth.ResetPasswordRequest) error
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
	redisServer    redis.IRedis
	smtpServer     smtp.ItfSmtp
	googleProvider google.ItfGoogle
	utils          utils.IUtils
}

func NewAuthService(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	redisServer redis.IRedis,
	smtpServer smtp.ItfSmtp,
	googleProvider google.ItfGoogle,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: repo,
		bcryptUtils:    bcryptUtils,
		redisServer:    redisServer,
		smtpServer:     smtpServer,
		googleProvider: googleProvider,
		utils:          utils,
	}
}

func makeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
}
