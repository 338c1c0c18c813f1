package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/services/markdown"
)

type ListCommentsCommand struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole string
}

type ListCommentsResult struct {
	Comments []*CommentResult
}

// ListCommentsUseCase returns a ticket's comments. Internal comments are
// filtered out for customers.
type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	markdownSvc markdown.MarkdownService
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, cmd ListCommentsCommand) (*ListCommentsResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.RequesterID, cmd.RequesterRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	role := authorization.ParseUserRole(cmd.RequesterRole)
	includeInternal := role.IsStaff()

	comments, err := uc.commentRepo.ListByTicketID(ctx, cmd.TicketID, includeInternal)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	results := make([]*CommentResult, 0, len(comments))
	for _, comment := range comments {
		bodyHTML, err := uc.markdownSvc.ToHTMLSanitized(comment.Body())
		if err != nil {
			uc.logger.Warnw("failed to render comment markdown", "comment_id", comment.ID(), "error", err)
			bodyHTML = ""
		}
		results = append(results, newCommentResult(comment, bodyHTML))
	}

	return &ListCommentsResult{Comments: results}, nil
}
