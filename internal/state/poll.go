package state

import (
	"context"

	"kampusgo.dev/kampussosyal/internal/api"
	"kampusgo.dev/kampussosyal/internal/model"
)

// PollState is the poll slice: listing, active poll and its results.
type PollState struct {
	lifecycle
	client  *api.Client
	items   []model.Poll
	active  *model.Poll
	results *model.PollResults
}

func NewPollState(client *api.Client, notify Notifier) *PollState {
	return &PollState{lifecycle: newLifecycle(notify), client: client}
}

func (s *PollState) Fetch(ctx context.Context, f api.PollFilter) error {
	s.begin()
	polls, p, err := s.client.ListPolls(ctx, f)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.items = polls
	s.mu.Unlock()
	s.succeed(p)
	return nil
}

func (s *PollState) FetchOne(ctx context.Context, id string) error {
	s.begin()
	poll, err := s.client.GetPoll(ctx, id)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.active = poll
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

func (s *PollState) Create(ctx context.Context, req api.CreatePollRequest) (*model.Poll, error) {
	s.begin()
	poll, err := s.client.CreatePoll(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.items = append([]model.Poll{*poll}, s.items...)
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Anket başarıyla oluşturuldu")
	return poll, nil
}

func (s *PollState) Update(ctx context.Context, id string, req api.UpdatePollRequest) (*model.Poll, error) {
	s.begin()
	poll, err := s.client.UpdatePoll(ctx, id, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].PollID == id {
			s.items[i] = *poll
		}
	}
	if s.active != nil && s.active.PollID == id {
		s.active = poll
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Anket başarıyla güncellendi")
	return poll, nil
}

func (s *PollState) Delete(ctx context.Context, id string) error {
	s.begin()
	if err := s.client.DeletePoll(ctx, id); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, p := range s.items {
		if p.PollID != id {
			kept = append(kept, p)
		}
	}
	s.items = kept
	if s.active != nil && s.active.PollID == id {
		s.active = nil
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Anket başarıyla silindi")
	return nil
}

// Vote casts the caller's vote and refreshes the option counts wherever the
// poll appears.
func (s *PollState) Vote(ctx context.Context, pollID, optionID string) error {
	s.begin()
	result, err := s.client.VotePoll(ctx, pollID, optionID)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].PollID == pollID {
			s.items[i].Options = result.Results
		}
	}
	if s.active != nil && s.active.PollID == pollID {
		s.active.Options = result.Results
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Oyunuz kaydedildi")
	return nil
}

// FetchResults loads the tallied results of a poll.
func (s *PollState) FetchResults(ctx context.Context, pollID string) error {
	s.begin()
	results, err := s.client.PollResults(ctx, pollID)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.results = results
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

func (s *PollState) Items() []model.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Poll(nil), s.items...)
}

func (s *PollState) Active() *model.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	p := *s.active
	return &p
}

func (s *PollState) Results() *model.PollResults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.results == nil {
		return nil
	}
	r := *s.results
	return &r
}
