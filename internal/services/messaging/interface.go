package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetShotMessage returns a line of commentary for a trigger pull
	GetShotMessage(ctx context.Context, input *GetShotMessageInput) (*GetShotMessageOutput, error)

	// GetRoundMessage returns a line announcing a freshly loaded drum
	GetRoundMessage(ctx context.Context, input *GetRoundMessageInput) (*GetRoundMessageOutput, error)

	// GetGameOverMessage returns the closing line of a game
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
