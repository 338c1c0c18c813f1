package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/authorization"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	TicketID   uint
	AuthorID   uint
	AuthorRole string
	Body       string
	IsInternal bool
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	markdownSvc markdown.MarkdownService
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		markdownSvc: markdownSvc,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	role := authorization.ParseUserRole(cmd.AuthorRole)
	if cmd.IsInternal && !role.IsStaff() {
		return nil, errors.NewForbiddenError("only staff can write internal comments")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.AuthorID, cmd.AuthorRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Body, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := t.AddComment(comment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// The ticket carries first-response bookkeeping updated by AddComment.
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket after comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	bodyHTML, err := uc.markdownSvc.ToHTMLSanitized(comment.Body())
	if err != nil {
		uc.logger.Warnw("failed to render comment markdown", "comment_id", comment.ID(), "error", err)
		bodyHTML = ""
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	return newCommentResult(comment, bodyHTML), nil
}
