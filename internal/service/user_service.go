package service

import (
	"context"
	"strings"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/mysql"
	"Founder_Circle/internal/repository/redis"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     *mysql.UserRepository
	tags     *mysql.TagRepository
	follows  *mysql.FollowRepository
	rUser    *redis.UserRepository
	emailSvc *EmailService
}

func NewUserService(db *gorm.DB, emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     mysql.NewUserRepository(db),
		tags:     mysql.NewTagRepository(db),
		follows:  mysql.NewFollowRepository(db),
		rUser:    &redis.UserRepository{},
		emailSvc: emailSvc,
	}
}

func (s *UserService) Register(ctx context.Context, username, password, email, code string) (*model.User, error) {
	ok, err := s.emailSvc.VerifyCode("register", email, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	if err = s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	pkg.Logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*pkg.Pair, *model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidPassword
	}

	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}
	// 单端登录：access token 同步写入 redis
	if err = s.rUser.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

func (s *UserService) Logout(userID string) error {
	return s.rUser.DeleteUserToken(userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, claims, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	if err = s.rUser.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyCode("reset", email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(ctx, user, string(hash)); err != nil {
		return err
	}
	// 改密后强制下线
	return s.rUser.DeleteUserToken(user.ID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(ctx, user, string(hash)); err != nil {
		return err
	}
	return s.rUser.DeleteUserToken(userID)
}

// Profile 用户资料 + 标签 + 关注计数
type Profile struct {
	User           *model.User `json:"user"`
	Tags           []string    `json:"tags"`
	FollowersCount int64       `json:"followersCount"`
	FollowingCount int64       `json:"followingCount"`
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	tags, err := s.tags.GetTags(ctx, model.EntityUser, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	followers, err := s.follows.CountFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.follows.CountFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:           user,
		Tags:           names,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}

// ProfileUpdate 可选字段，nil 表示不修改
type ProfileUpdate struct {
	DisplayName        *string
	Bio                *string
	AvatarURL          *string
	City               *string
	OnboardingComplete *bool
	Tags               []string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*Profile, error) {
	fields := map[string]any{}
	if upd.DisplayName != nil {
		fields["display_name"] = *upd.DisplayName
	}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}
	if upd.AvatarURL != nil {
		fields["avatar_url"] = *upd.AvatarURL
	}
	if upd.City != nil {
		fields["city"] = strings.TrimSpace(*upd.City)
	}
	if upd.OnboardingComplete != nil {
		fields["onboarding_complete"] = *upd.OnboardingComplete
	}
	if len(fields) > 0 {
		if err := s.repo.UpdateProfile(ctx, userID, fields); err != nil {
			return nil, err
		}
	}
	if upd.Tags != nil {
		tagIDs, err := s.tags.ResolveNames(ctx, upd.Tags)
		if err != nil {
			return nil, err
		}
		if err = s.tags.SetTags(ctx, model.EntityUser, userID, tagIDs); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(ctx, userID)
}

// Search 按用户名、昵称及标签名模糊搜索
func (s *UserService) Search(ctx context.Context, query string, limit int) ([]model.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.User{}, nil
	}
	tagUserIDs, err := s.tags.UserIDsWithTagNameLike(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, "%"+query+"%", tagUserIDs, limit)
}
