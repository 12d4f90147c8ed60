package authService

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioGolang/internal/api/auth"
	contextPkg "PortfolioGolang/pkg/context"
)

const otpTTL = 5 * time.Minute

func otpKey(email string) string {
	return "password-reset:" + email
}

func (s *authService) ForgotPassword(c context.Context, req auth.ForgotPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Users.GetByEmail(c, req.Email); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.ErrUserWithEmailNotFound
		}
		return err
	}

	code, err := s.utils.GenerateOTP()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate OTP")
		return err
	}

	if err := s.redisServer.SetOTP(c, otpKey(req.Email), code, otpTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store OTP in Redis")
		return err
	}

	if err := s.smtpServer.SendOTP(req.Email, code); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send OTP email")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Password reset OTP sent")

	return nil
}

func (s *authService) ResetPassword(c context.Context, req auth.ResetPasswordRequest) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	storedOTP, err := s.redisServer.GetOTP(c, otpKey(req.Email))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("OTP lookup failed")
		return auth.ErrInvalidOTP
	}

	if storedOTP != req.Code {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      "OTP mismatch",
		}).Warn("Invalid OTP provided")
		return auth.ErrInvalidOTP
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.ErrUserWithEmailNotFound
		}
		return err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err == nil {
		return auth.ErrPasswordSame
	}

	hashedPass, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	if err := repo.Users.UpdateUserPassword(c, req.Email, hashedPass); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update user password")
		return err
	}

	if err := s.redisServer.DeleteOTP(c, otpKey(req.Email)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete used OTP")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("Password reset completed")

	return nil
}
