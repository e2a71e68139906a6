package commands

import (
	"context"

	"ezrent/internal/domain/item"
	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Title       string
	Description string
	PricePerDay int64
	Category    string
	Location    string
	Quantity    int
	ImageURLs   []string
}

type CreateItemResult struct {
	ItemID uuid.UUID
}

type ItemCommands interface {
	CreateItem(ctx context.Context, actor shared.Actor, req CreateItemRequest) (*CreateItemResult, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, clock: clk}
}

func (uc *itemCommandsImpl) CreateItem(ctx context.Context, actor shared.Actor, req CreateItemRequest) (*CreateItemResult, error) {
	if actor.Role != user.RoleOwner {
		return nil, errs.Wrap(ErrNotAuthorized, "only owners can list items")
	}

	it, err := item.NewItem(actor.UserID, item.Input{
		Title:       req.Title,
		Description: req.Description,
		PricePerDay: req.PricePerDay,
		Category:    req.Category,
		Location:    req.Location,
		Quantity:    req.Quantity,
		ImageURLs:   req.ImageURLs,
	}, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Items().Create(ctx, tx.DB(), it)
	})
	if err != nil {
		return nil, err
	}
	return &CreateItemResult{ItemID: it.ID()}, nil
}
