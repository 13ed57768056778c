package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tasktory/internal/domain"
	"github.com/alexanderramin/tasktory/internal/repository"
)

type statusService struct {
	projects repository.ProjectRepo
	team     repository.TeamMemberRepo
	members  repository.ProjectMemberRepo
}

func NewStatusService(projects repository.ProjectRepo, team repository.TeamMemberRepo, members repository.ProjectMemberRepo) StatusService {
	return &statusService{projects: projects, team: team, members: members}
}

func (s *statusService) Overview(ctx context.Context) (*Overview, error) {
	projects, err := s.projects.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("counting projects: %w", err)
	}
	o := &Overview{
		Projects: len(projects),
		ByStatus: make(map[domain.ProjectStatus]int),
	}
	for _, p := range projects {
		o.ByStatus[p.Status]++
	}

	team, err := s.team.List(ctx, repository.TeamMemberFilter{})
	if err != nil {
		return nil, fmt.Errorf("counting team members: %w", err)
	}
	o.TeamMembers = len(team)
	for _, m := range team {
		if m.Available {
			o.AvailableMembers++
		}
		active, err := s.members.ListActiveByTeamMember(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		load := 0
		for _, pm := range active {
			load += pm.AllocationPercent
		}
		o.ActiveAssignments += len(active)
		if load > 100 {
			o.OverAllocated++
		}
	}
	return o, nil
}
