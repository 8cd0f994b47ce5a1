package service

import (
	"context"

	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
)

type MemberService struct {
	members repository.MemberRepositoryIface
}

func NewMemberService(members repository.MemberRepositoryIface) *MemberService {
	return &MemberService{members: members}
}

func (s *MemberService) List(ctx context.Context, filter repository.MemberFilter, page repository.PageRequest) (*repository.Page[model.Member], error) {
	return s.members.Query(ctx, filter, page)
}
