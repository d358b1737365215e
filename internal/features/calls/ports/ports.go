package ports

import (
	"context"

	"carrier-sales/internal/features/calls/domain"
)

// CallService defines the primary port for call logging and carrier history.
type CallService interface {
	LogCall(ctx context.Context, call domain.Call) (*domain.CallReceipt, error)
	LogInteraction(ctx context.Context, interaction domain.Interaction) (*domain.Interaction, error)
	History(ctx context.Context, mcNumber string) (*domain.InteractionHistory, error)
}

// CallRepository defines the secondary port for call storage.
type CallRepository interface {
	Insert(ctx context.Context, call *domain.Call) error
}

// InteractionRepository defines the secondary port for carrier interaction storage.
// ListByMC returns interactions newest first.
type InteractionRepository interface {
	Insert(ctx context.Context, interaction *domain.Interaction) error
	ListByMC(ctx context.Context, mcNumber string) ([]domain.Interaction, error)
}
