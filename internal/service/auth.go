package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"course-market-api/internal/config"
	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrOTPThrottled = errors.New("please wait a minute before requesting a new code")
	ErrOTPInvalid   = errors.New("the code is wrong or expired")
)

type AuthService interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*dto.VerifyOTPResponse, error)
	ParseToken(token string) (uint, error)
}

type authServiceImpl struct {
	cfg      config.JWT
	otpCfg   config.OTP
	otpRepo  repository.OTPRepository
	userRepo repository.UserRepository
}

func NewAuthService(cfg config.JWT, otpCfg config.OTP, otpRepo repository.OTPRepository, userRepo repository.UserRepository) AuthService {
	return &authServiceImpl{
		cfg:      cfg,
		otpCfg:   otpCfg,
		otpRepo:  otpRepo,
		userRepo: userRepo,
	}
}

// SendOTP stores a fresh code for the phone. Delivery is out of scope;
// an SMS provider would pick the row up from here.
func (s *authServiceImpl) SendOTP(ctx context.Context, phone string) error {
	last, err := s.otpRepo.Latest(ctx, phone)
	if err != nil {
		return fmt.Errorf("load last otp: %w", err)
	}

	now := time.Now()
	if last != nil && now.Sub(last.CreatedAt) < s.otpCfg.ResendInterval {
		return ErrOTPThrottled
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate otp code: %w", err)
	}

	otp := &model.OTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: now.Add(s.otpCfg.Expiry),
	}
	if err := s.otpRepo.Replace(ctx, otp); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	return nil
}

func (s *authServiceImpl) VerifyOTP(ctx context.Context, phone, code string) (*dto.VerifyOTPResponse, error) {
	otp, err := s.otpRepo.Latest(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("load otp: %w", err)
	}
	if otp == nil || otp.Code != code || time.Now().After(otp.ExpiresAt) {
		return nil, ErrOTPInvalid
	}

	user, err := s.userRepo.GetOrCreateByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get or create user: %w", err)
	}
	if !user.IsPhoneVerified {
		if err := s.userRepo.MarkPhoneVerified(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("mark phone verified: %w", err)
		}
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.VerifyOTPResponse{
		UserID: user.ID,
		Phone:  user.Phone,
		Token:  token,
	}, nil
}

func (s *authServiceImpl) issueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *authServiceImpl) ParseToken(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, fmt.Errorf("missing subject claim")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse subject claim: %w", err)
	}

	return uint(userID), nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
