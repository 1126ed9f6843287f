package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-metrics-service/internal/sales/core/domain"
	"sales-metrics-service/internal/sales/core/engine"
	"sales-metrics-service/internal/sales/core/ports"
)

var (
	ErrEmptyBatch           = errors.New("sales batch is empty")
	ErrBatchTooLarge        = errors.New("sales batch too large")
	ErrInvalidReferenceTime = errors.New("invalid reference time")
)

// AnalyzeSnapshotUseCase runs the full dashboard over a batch of raw sales
// posted by the caller instead of the database.
type AnalyzeSnapshotUseCase struct {
	load     ports.SnapshotLoader
	cfg      Config
	maxBatch int
	now      func() time.Time
}

func NewAnalyzeSnapshotUseCase(load ports.SnapshotLoader, cfg Config, maxBatch int) *AnalyzeSnapshotUseCase {
	return &AnalyzeSnapshotUseCase{load: load, cfg: cfg, maxBatch: maxBatch, now: time.Now}
}

func (uc *AnalyzeSnapshotUseCase) WithClock(now func() time.Time) *AnalyzeSnapshotUseCase {
	uc.now = now
	return uc
}

type AnalyzeInput struct {
	Records []domain.RawSale
	// Now pins the reference time for churn and staleness, RFC 3339 or
	// YYYY-MM-DD. Empty uses the clock.
	Now string
	DashboardInput
}

type AnalyzeResult struct {
	Received  int
	Accepted  int
	Rejected  []domain.ValidationError
	Dashboard *domain.Dashboard
}

func (uc *AnalyzeSnapshotUseCase) Execute(ctx context.Context, in AnalyzeInput) (AnalyzeResult, error) {
	if err := uc.validateInput(in); err != nil {
		return AnalyzeResult{}, err
	}
	now, err := uc.referenceTime(in.Now)
	if err != nil {
		return AnalyzeResult{}, err
	}

	// validation report over the whole batch, independent of the window
	check := engine.Normalize(in.Records, engine.Window{})

	snap := uc.load(in.Records)
	dashboard := NewDashboardUseCase(snap, snap, snap, uc.cfg).
		WithClock(func() time.Time { return now })

	d, err := dashboard.Dashboard(ctx, in.DashboardInput)
	if err != nil {
		return AnalyzeResult{}, err
	}
	return AnalyzeResult{
		Received:  len(in.Records),
		Accepted:  len(check.Records),
		Rejected:  check.Errors,
		Dashboard: d,
	}, nil
}

func (uc *AnalyzeSnapshotUseCase) validateInput(in AnalyzeInput) error {
	if len(in.Records) == 0 {
		return ErrEmptyBatch
	}
	if uc.maxBatch > 0 && len(in.Records) > uc.maxBatch {
		return fmt.Errorf("%w: %d records, limit %d", ErrBatchTooLarge, len(in.Records), uc.maxBatch)
	}
	return nil
}

func (uc *AnalyzeSnapshotUseCase) referenceTime(s string) (time.Time, error) {
	if s == "" {
		return uc.now().UTC(), nil
	}
	for _, layout := range []string{time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidReferenceTime, s)
}
