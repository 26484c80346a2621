package service

import (
	"context"
	"encoding/json"

	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/internal/repository"
	pkgcache "github.com/sinergi-org/sinergi-backend/pkg/cache"
)

// MemberService read-only member directory backing audience preview UIs
type MemberService interface {
	ListMembers(ctx context.Context, page, limit int) ([]*domain.MemberResponse, *common.Meta, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
	cache      pkgcache.Service
}

// NewMemberService creates a new MemberService. cache may be nil; the
// directory then reads straight from storage.
func NewMemberService(memberRepo repository.MemberRepository, cache pkgcache.Service) MemberService {
	return &memberService{memberRepo: memberRepo, cache: cache}
}

type memberPage struct {
	Members []*domain.MemberResponse `json:"members"`
	Meta    *common.Meta             `json:"meta"`
}

func (s *memberService) ListMembers(ctx context.Context, page, limit int) ([]*domain.MemberResponse, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if s.cache != nil {
		if raw, err := s.cache.GetMemberPage(ctx, page, limit); err == nil {
			var cached memberPage
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached.Members, cached.Meta, nil
			}
		}
	}

	members, total, err := s.memberRepo.FindAll(page, limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.MemberResponse, len(members))
	for i, member := range members {
		responses[i] = member.ToResponse()
	}
	meta := &common.Meta{Page: page, Limit: limit, Total: total}

	if s.cache != nil {
		_ = s.cache.SetMemberPage(ctx, page, limit, memberPage{Members: responses, Meta: meta})
	}

	return responses, meta, nil
}
