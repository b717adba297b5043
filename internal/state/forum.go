package state

import (
	"context"

	"kampusgo.dev/kampussosyal/internal/api"
	"kampusgo.dev/kampussosyal/internal/model"
)

// ForumState is the forum slice: the current listing, the forum being
// viewed, and the request lifecycle around them.
type ForumState struct {
	lifecycle
	client *api.Client
	items  []model.Forum
	active *model.Forum
}

func NewForumState(client *api.Client, notify Notifier) *ForumState {
	return &ForumState{lifecycle: newLifecycle(notify), client: client}
}

// Fetch replaces the listing with the backend's current page.
func (s *ForumState) Fetch(ctx context.Context, f api.ForumFilter) error {
	s.begin()
	forums, p, err := s.client.ListForums(ctx, f)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.items = forums
	s.mu.Unlock()
	s.succeed(p)
	return nil
}

// FetchOne loads the forum being viewed.
func (s *ForumState) FetchOne(ctx context.Context, id string) error {
	s.begin()
	forum, err := s.client.GetForum(ctx, id)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.active = forum
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

// Create opens a forum and prepends it to the listing.
func (s *ForumState) Create(ctx context.Context, req api.CreateForumRequest) (*model.Forum, error) {
	s.begin()
	forum, err := s.client.CreateForum(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.items = append([]model.Forum{*forum}, s.items...)
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Forum başarıyla oluşturuldu")
	return forum, nil
}

// Update edits a forum and replaces it wherever it appears.
func (s *ForumState) Update(ctx context.Context, id string, req api.UpdateForumRequest) (*model.Forum, error) {
	s.begin()
	forum, err := s.client.UpdateForum(ctx, id, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ForumID == id {
			s.items[i] = *forum
		}
	}
	if s.active != nil && s.active.ForumID == id {
		s.active = forum
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Forum başarıyla güncellendi")
	return forum, nil
}

// Delete removes a forum from the backend and from local state.
func (s *ForumState) Delete(ctx context.Context, id string) error {
	s.begin()
	if err := s.client.DeleteForum(ctx, id); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, f := range s.items {
		if f.ForumID != id {
			kept = append(kept, f)
		}
	}
	s.items = kept
	if s.active != nil && s.active.ForumID == id {
		s.active = nil
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Forum başarıyla silindi")
	return nil
}

// React toggles the caller's reaction and overwrites only the counters on
// the affected forum.
func (s *ForumState) React(ctx context.Context, id, reactionType string) error {
	s.begin()
	counts, err := s.client.ReactForum(ctx, id, reactionType)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ForumID == id {
			s.items[i].LikeCount = counts.LikeCount
			s.items[i].DislikeCount = counts.DislikeCount
		}
	}
	if s.active != nil && s.active.ForumID == id {
		s.active.LikeCount = counts.LikeCount
		s.active.DislikeCount = counts.DislikeCount
	}
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

// Items returns a copy of the current listing.
func (s *ForumState) Items() []model.Forum {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Forum(nil), s.items...)
}

// Active returns the forum being viewed, if any.
func (s *ForumState) Active() *model.Forum {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	f := *s.active
	return &f
}
