package usecases

import (
	"context"
	"sort"

	"deskd/internal/domain/routing"
	"deskd/internal/domain/ticket"
	"deskd/internal/domain/user"
	"deskd/internal/shared/logger"
)

type GetAvailableAgentsCommand struct {
	RequiredSkills []string
}

type AgentResult struct {
	AgentID       uint
	Name          string
	Email         string
	Skills        []AgentSkillResult
	ActiveTickets int
}

type AgentSkillResult struct {
	Category    string
	Name        string
	Proficiency int
}

type GetAvailableAgentsResult struct {
	Agents []*AgentResult
}

// GetAvailableAgentsUseCase lists active agents that satisfy a skill
// requirement, each with its current workload, sorted least-loaded first.
type GetAvailableAgentsUseCase struct {
	userRepo   user.UserRepository
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetAvailableAgentsUseCase(
	userRepo user.UserRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetAvailableAgentsUseCase {
	return &GetAvailableAgentsUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetAvailableAgentsUseCase) Execute(ctx context.Context, cmd GetAvailableAgentsCommand) (*GetAvailableAgentsResult, error) {
	candidates, err := loadCandidates(ctx, uc.userRepo, uc.ticketRepo, cmd.RequiredSkills)
	if err != nil {
		uc.logger.Errorw("failed to load agent candidates", "error", err)
		return nil, err
	}

	// Candidates arrive ordered by agent ID; a stable selection sort by
	// workload keeps the ID tie-break.
	sortCandidatesByWorkload(candidates)

	agents := make([]*AgentResult, 0, len(candidates))
	for _, c := range candidates {
		agents = append(agents, newAgentResult(c))
	}

	return &GetAvailableAgentsResult{Agents: agents}, nil
}

func newAgentResult(c routing.Candidate) *AgentResult {
	skills := c.Agent.Skills()
	skillResults := make([]AgentSkillResult, 0, len(skills))
	for _, s := range skills {
		skillResults = append(skillResults, AgentSkillResult{
			Category:    s.Category(),
			Name:        s.Name(),
			Proficiency: s.Proficiency(),
		})
	}

	return &AgentResult{
		AgentID:       c.Agent.ID(),
		Name:          c.Agent.Name().String(),
		Email:         c.Agent.Email().String(),
		Skills:        skillResults,
		ActiveTickets: c.ActiveTickets,
	}
}

// loadCandidates fetches active agents matching the skill requirement and
// pairs each with its active-ticket count. The result is ordered by agent ID.
func loadCandidates(
	ctx context.Context,
	userRepo user.UserRepository,
	ticketRepo ticket.TicketRepository,
	requiredSkills []string,
) ([]routing.Candidate, error) {
	agents, err := userRepo.ListActiveAgents(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]*user.User, 0, len(agents))
	ids := make([]uint, 0, len(agents))
	for _, agent := range agents {
		if !agent.HasAllSkills(requiredSkills) {
			continue
		}
		eligible = append(eligible, agent)
		ids = append(ids, agent.ID())
	}

	if len(eligible) == 0 {
		return nil, nil
	}

	counts, err := ticketRepo.CountActiveByAssignees(ctx, ids)
	if err != nil {
		return nil, err
	}

	candidates := make([]routing.Candidate, 0, len(eligible))
	for _, agent := range eligible {
		candidates = append(candidates, routing.Candidate{
			Agent:         agent,
			ActiveTickets: counts[agent.ID()],
		})
	}

	return candidates, nil
}

func sortCandidatesByWorkload(candidates []routing.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ActiveTickets < candidates[j].ActiveTickets
	})
}
