package ticket

import (
	"fmt"
	"time"

	"deskd/internal/shared/biztime"
)

// Comment is a markdown-authored reply on a ticket. Internal comments are
// visible to staff only.
type Comment struct {
	id         uint
	ticketID   uint
	authorID   uint
	body       string
	isInternal bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewComment(
	ticketID uint,
	authorID uint,
	body string,
	isInternal bool,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body cannot be empty")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("body exceeds maximum length of 10000 characters")
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:   ticketID,
		authorID:   authorID,
		body:       body,
		isInternal: isInternal,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	body string,
	isInternal bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		body:       body,
		isInternal: isInternal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) IsInternal() bool     { return c.isInternal }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) UpdateBody(body string) error {
	if len(body) == 0 {
		return fmt.Errorf("body cannot be empty")
	}
	if len(body) > 10000 {
		return fmt.Errorf("body exceeds maximum length of 10000 characters")
	}

	c.body = body
	c.updatedAt = biztime.NowUTC()
	return nil
}
