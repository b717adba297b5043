package state

import (
	"context"

	"kampusgo.dev/kampussosyal/internal/api"
	"kampusgo.dev/kampussosyal/internal/model"
)

// UserState is the auth/profile slice: the signed-in user plus whichever
// profile is being viewed.
type UserState struct {
	lifecycle
	client  *api.Client
	current *model.User
	viewed  *model.User
}

func NewUserState(client *api.Client, notify Notifier) *UserState {
	return &UserState{lifecycle: newLifecycle(notify), client: client}
}

func (s *UserState) Register(ctx context.Context, req api.RegisterRequest) error {
	s.begin()
	payload, err := s.client.Register(ctx, req)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	user := payload.User
	s.current = &user
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Kayıt başarılı, hoş geldiniz")
	return nil
}

func (s *UserState) Login(ctx context.Context, req api.LoginRequest) error {
	s.begin()
	payload, err := s.client.Login(ctx, req)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	user := payload.User
	s.current = &user
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Giriş başarılı")
	return nil
}

// Logout drops the session and the signed-in user. Local only.
func (s *UserState) Logout() {
	s.client.Logout()
	s.mu.Lock()
	s.current = nil
	s.status = StatusIdle
	s.err = ""
	s.mu.Unlock()
}

// FetchMe restores the signed-in user from a stored session.
func (s *UserState) FetchMe(ctx context.Context) error {
	s.begin()
	user, err := s.client.Me(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

// FetchProfile loads another user's public profile by id.
func (s *UserState) FetchProfile(ctx context.Context, id string) error {
	s.begin()
	user, err := s.client.GetUser(ctx, id)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.viewed = user
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

// FetchProfileByUsername loads another user's public profile by username.
func (s *UserState) FetchProfileByUsername(ctx context.Context, username string) error {
	s.begin()
	user, err := s.client.GetUserByUsername(ctx, username)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.viewed = user
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

func (s *UserState) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error {
	s.begin()
	user, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Profil başarıyla güncellendi")
	return nil
}

func (s *UserState) ChangePassword(ctx context.Context, current, next string) error {
	s.begin()
	if err := s.client.ChangePassword(ctx, current, next); err != nil {
		return s.fail(err)
	}
	s.succeed(nil)
	s.notify.Success("Şifreniz güncellendi")
	return nil
}

// DeleteAccount removes the account and clears the signed-in user.
func (s *UserState) DeleteAccount(ctx context.Context) error {
	s.begin()
	if err := s.client.DeleteAccount(ctx); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Hesabınız silindi")
	return nil
}

// Current returns the signed-in user, if any.
func (s *UserState) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Viewed returns the profile being viewed, if any.
func (s *UserState) Viewed() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.viewed == nil {
		return nil
	}
	u := *s.viewed
	return &u
}
