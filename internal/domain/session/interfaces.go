package session

import (
	"context"

	"github.com/rpggio/checkmaster/internal/domain/checklist"
)

// Store loads and saves the whole checklist tree.
type Store interface {
	Load(ctx context.Context) checklist.Project
	Save(ctx context.Context, p checklist.Project) error
}
