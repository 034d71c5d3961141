package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"crowdledger/internal/core/port"
)

// Seed creates demo campaigns and contributions through the ledger, so the
// seeded state follows the same rules as live traffic. It is meant
// for an empty store and does nothing when campaigns already exist.
func Seed(ctx context.Context, svc port.LedgerUseCase) error {
	total, err := svc.GetTotalCampaigns(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	backers := make([]string, 10)
	for i := range backers {
		backers[i] = "demo-" + uuid.NewString()[:8]
	}

	for i := 1; i <= 5; i++ {
		creator := backers[r.Intn(len(backers))]
		title := fmt.Sprintf("Demo campaign %d", i)
		goal := int64(1000 * i)
		duration := int64(24*60*60) * int64(i)
		id, err := svc.CreateCampaign(ctx, creator, title, goal, duration)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
		for j := 0; j < 3+r.Intn(5); j++ {
			backer := backers[r.Intn(len(backers))]
			amount := int64(50 + r.Intn(400))
			if _, err = svc.Contribute(ctx, id, backer, amount); err != nil {
				return fmt.Errorf("seed contribution to %d: %w", id, err)
			}
		}
	}
	return nil
}
