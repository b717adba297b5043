package state

import (
	"context"

	"kampusgo.dev/kampussosyal/internal/api"
	"kampusgo.dev/kampussosyal/internal/model"
)

// CommentState is the comment slice for the forum being viewed: its
// top-level comments plus reply threads keyed by parent comment.
type CommentState struct {
	lifecycle
	client  *api.Client
	forumID string
	items   []model.Comment
	replies map[string][]model.Comment
}

func NewCommentState(client *api.Client, notify Notifier) *CommentState {
	return &CommentState{
		lifecycle: newLifecycle(notify),
		client:    client,
		replies:   make(map[string][]model.Comment),
	}
}

// FetchForForum replaces the slice with one page of a forum's top-level
// comments. Switching forums drops the previous reply threads.
func (s *CommentState) FetchForForum(ctx context.Context, forumID string, page, perPage int) error {
	s.begin()
	comments, p, err := s.client.ForumComments(ctx, forumID, page, perPage)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	if s.forumID != forumID {
		s.replies = make(map[string][]model.Comment)
	}
	s.forumID = forumID
	s.items = comments
	s.mu.Unlock()
	s.succeed(p)
	return nil
}

// FetchReplies loads the direct replies of one comment.
func (s *CommentState) FetchReplies(ctx context.Context, commentID string, page, perPage int) error {
	s.begin()
	replies, _, err := s.client.CommentReplies(ctx, commentID, page, perPage)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.replies[commentID] = replies
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

// Create posts a comment. Top-level comments prepend to the listing; replies
// append to their parent's thread.
func (s *CommentState) Create(ctx context.Context, req api.CreateCommentRequest) (*model.Comment, error) {
	s.begin()
	comment, err := s.client.CreateComment(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	if comment.ParentCommentID != "" {
		parent := comment.ParentCommentID
		s.replies[parent] = append(s.replies[parent], *comment)
	} else if s.forumID == "" || s.forumID == comment.ForumID {
		s.items = append([]model.Comment{*comment}, s.items...)
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Yorum başarıyla eklendi")
	return comment, nil
}

func (s *CommentState) Update(ctx context.Context, id string, req api.UpdateCommentRequest) (*model.Comment, error) {
	s.begin()
	comment, err := s.client.UpdateComment(ctx, id, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.replaceLocked(id, func(c *model.Comment) { *c = *comment })
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Yorum başarıyla güncellendi")
	return comment, nil
}

// Delete removes a comment. Deleting a top-level comment also drops its
// local reply thread, mirroring the backend's cascade.
func (s *CommentState) Delete(ctx context.Context, id string) error {
	s.begin()
	if err := s.client.DeleteComment(ctx, id); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, c := range s.items {
		if c.CommentID != id {
			kept = append(kept, c)
		}
	}
	s.items = kept
	delete(s.replies, id)
	for parent, thread := range s.replies {
		filtered := thread[:0]
		for _, c := range thread {
			if c.CommentID != id {
				filtered = append(filtered, c)
			}
		}
		s.replies[parent] = filtered
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Yorum başarıyla silindi")
	return nil
}

// React toggles the caller's reaction and overwrites only those counters.
func (s *CommentState) React(ctx context.Context, id, reactionType string) error {
	s.begin()
	counts, err := s.client.ReactComment(ctx, id, reactionType)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.replaceLocked(id, func(c *model.Comment) {
		c.LikeCount = counts.LikeCount
		c.DislikeCount = counts.DislikeCount
	})
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

// replaceLocked applies fn to the comment wherever it appears. Callers hold
// the write lock.
func (s *CommentState) replaceLocked(id string, fn func(*model.Comment)) {
	for i := range s.items {
		if s.items[i].CommentID == id {
			fn(&s.items[i])
		}
	}
	for _, thread := range s.replies {
		for i := range thread {
			if thread[i].CommentID == id {
				fn(&thread[i])
			}
		}
	}
}

// ForumID returns the forum the slice currently tracks.
func (s *CommentState) ForumID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forumID
}

func (s *CommentState) Items() []model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Comment(nil), s.items...)
}

// Replies returns the loaded reply thread of a comment.
func (s *CommentState) Replies(commentID string) []model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Comment(nil), s.replies[commentID]...)
}
