package state

import (
	"context"

	"kampusgo.dev/kampussosyal/internal/api"
	"kampusgo.dev/kampussosyal/internal/model"
)

// GroupState is the group slice: listing, active group and its member page.
type GroupState struct {
	lifecycle
	client  *api.Client
	items   []model.Group
	active  *model.Group
	members []model.GroupMember
}

func NewGroupState(client *api.Client, notify Notifier) *GroupState {
	return &GroupState{lifecycle: newLifecycle(notify), client: client}
}

func (s *GroupState) Fetch(ctx context.Context, f api.GroupFilter) error {
	s.begin()
	groups, p, err := s.client.ListGroups(ctx, f)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.items = groups
	s.mu.Unlock()
	s.succeed(p)
	return nil
}

func (s *GroupState) FetchOne(ctx context.Context, id string) error {
	s.begin()
	group, err := s.client.GetGroup(ctx, id)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.active = group
	s.mu.Unlock()
	s.succeed(nil)
	return nil
}

func (s *GroupState) Create(ctx context.Context, req api.CreateGroupRequest) (*model.Group, error) {
	s.begin()
	group, err := s.client.CreateGroup(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.items = append([]model.Group{*group}, s.items...)
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Grup başarıyla oluşturuldu")
	return group, nil
}

func (s *GroupState) Update(ctx context.Context, id string, req api.UpdateGroupRequest) (*model.Group, error) {
	s.begin()
	group, err := s.client.UpdateGroup(ctx, id, req)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].GroupID == id {
			s.items[i] = *group
		}
	}
	if s.active != nil && s.active.GroupID == id {
		s.active = group
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Grup başarıyla güncellendi")
	return group, nil
}

func (s *GroupState) Delete(ctx context.Context, id string) error {
	s.begin()
	if err := s.client.DeleteGroup(ctx, id); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, g := range s.items {
		if g.GroupID != id {
			kept = append(kept, g)
		}
	}
	s.items = kept
	if s.active != nil && s.active.GroupID == id {
		s.active = nil
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Grup başarıyla silindi")
	return nil
}

// Join requests membership; the backend's message tells the caller whether
// they joined or are waiting for approval.
func (s *GroupState) Join(ctx context.Context, id string) error {
	s.begin()
	_, message, err := s.client.JoinGroup(ctx, id)
	if err != nil {
		return s.fail(err)
	}
	s.succeed(nil)
	s.notify.Success(message)
	// Membership changed the group's member list; refresh the active view.
	if active := s.Active(); active != nil && active.GroupID == id {
		return s.FetchOne(ctx, id)
	}
	return nil
}

func (s *GroupState) Leave(ctx context.Context, id string) error {
	s.begin()
	if err := s.client.LeaveGroup(ctx, id); err != nil {
		return s.fail(err)
	}
	s.succeed(nil)
	s.notify.Success("Gruptan ayrıldınız")
	if active := s.Active(); active != nil && active.GroupID == id {
		return s.FetchOne(ctx, id)
	}
	return nil
}

// FetchMembers loads one page of a group's member list.
func (s *GroupState) FetchMembers(ctx context.Context, id string, f api.MemberFilter) error {
	s.begin()
	members, p, err := s.client.GroupMembers(ctx, id, f)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	s.succeed(p)
	return nil
}

func (s *GroupState) SetMemberRole(ctx context.Context, groupID, userID, role string) error {
	s.begin()
	if err := s.client.UpdateMemberRole(ctx, groupID, userID, role); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	for i := range s.members {
		if s.members[i].UserID == userID {
			s.members[i].Role = role
		}
	}
	s.mu.Unlock()
	s.succeed(nil)
	s.notify.Success("Üye rolü güncellendi")
	return nil
}

// Approve resolves a pending membership request. Rejection drops the member
// from the local list; approval marks them active.
func (s *GroupState) Approve(ctx context.Context, groupID, userID string, approve bool) error {
	s.begin()
	if err := s.client.ApproveMembership(ctx, groupID, userID, approve); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	if approve {
		for i := range s.members {
			if s.members[i].UserID == userID {
				s.members[i].Status = model.MemberActive
			}
		}
	} else {
		kept := s.members[:0]
		for _, m := range s.members {
			if m.UserID != userID {
				kept = append(kept, m)
			}
		}
		s.members = kept
	}
	s.mu.Unlock()
	s.succeed(nil)
	if approve {
		s.notify.Success("Üyelik başvurusu onaylandı")
	} else {
		s.notify.Success("Üyelik başvurusu reddedildi")
	}
	return nil
}

func (s *GroupState) Items() []model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Group(nil), s.items...)
}

func (s *GroupState) Active() *model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	g := *s.active
	return &g
}

func (s *GroupState) Members() []model.GroupMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.GroupMember(nil), s.members...)
}
