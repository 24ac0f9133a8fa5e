package service

import (
	"context"
	"fmt"

	"github.com/h0pler/whs2nd-secureshoppingmall/internal/events"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/logging"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/models"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/repo"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/transport"
)

type AccountService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *AccountService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "account.register")

	if err := validateStruct(req); err != nil {
		l.Warn("register_rejected", "status", 400, "reason", "missing required fields")
		return nil, err
	}

	user := models.User{
		Username:    req.Username,
		Password:    req.Password,
		Role:        req.Role,
		FullName:    req.FullName,
		Address:     req.Address,
		PaymentInfo: req.PaymentInfo,
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TopicUserEvents, user.Username, map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	l.Info("register_success", "username", user.Username)
	return &user, nil
}

// Login matches the submitted credentials against the stored row
// exactly, case-sensitive. Any miss is an invalid-credentials error.
func (s *AccountService) Login(ctx context.Context, req transport.LoginRequest) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "account.login", "username", req.Username)

	if err := validateStruct(req); err != nil {
		l.Warn("login_rejected", "status", 400, "reason", "missing required fields")
		return nil, "", err
	}

	user, err := s.Repo.UserByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, "", err
	}

	l.Info("login_success")
	return user, fmt.Sprintf("Welcome back, %s!", user.Username), nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, req transport.UpdateProfileRequest) error {
	l := logging.FromContext(ctx).With("svc", "account.update_profile", "username", req.Username)

	if err := validateStruct(req); err != nil {
		l.Warn("update_profile_rejected", "status", 400, "reason", "missing required fields")
		return err
	}

	if err := s.Repo.UpdateProfile(ctx, req.Username, req.FullName, &req.Address, &req.PaymentInfo); err != nil {
		return err
	}

	s.publish(ctx, events.TopicUserEvents, req.Username, map[string]any{
		"type":     "profile_updated",
		"username": req.Username,
	})

	l.Info("update_profile_success")
	return nil
}

func (s *AccountService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "error", err)
	}
}
