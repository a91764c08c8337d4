package service

import (
	"errors"

	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendCode 发送验证码，scope 取 register / reset
func (s *EmailService) SendCode(scope, email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	// 先写 pending 键，邮件发送成功后再转 confirmed
	if err = s.rds.SetPending(scope, email, code); err != nil {
		return err
	}

	subject := "Verification code"
	title := "Verify your email"
	if scope == "reset" {
		subject = "Password reset code"
		title = "Reset your password"
	}
	html := pkg.EmailCodeHTML(title, code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, subject, html); err != nil {
		_ = s.rds.DeletePending(scope, email)
		return err
	}

	if err = s.rds.Confirm(scope, email); err != nil {
		_ = s.rds.DeletePending(scope, email)
		return err
	}
	return nil
}

// VerifyCode 校验验证码并一次性删除
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	val, err := s.rds.Get(scope, email)
	if err != nil {
		// 不存在或已过期
		return false, errors.New("code expired or not found")
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.Delete(scope, email); err != nil {
		return false, err
	}
	return true, nil
}
