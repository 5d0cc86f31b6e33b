package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/quizwizard-backend/internal/itemsclient"
	"github.com/angelmondragon/quizwizard-backend/internal/lifecycle"
	"github.com/angelmondragon/quizwizard-backend/pkg/enums"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

const expirySweeperJobName = "expiry-sweeper"

type ExpirySweeperJobParams struct {
	Logger *logger.Logger
	Items  itemsFacade
	// GraceDays nil applies lifecycle.DefaultGraceDays; zero is a valid grace.
	GraceDays *int
}

type itemsFacade interface {
	List(ctx context.Context) itemsclient.ListResult
	Delete(ctx context.Context, id int64) (itemsclient.WriteResult, error)
}

// NewExpirySweeperJob deletes quizzes that completed more than GraceDays ago.
func NewExpirySweeperJob(params ExpirySweeperJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Items == nil {
		return nil, fmt.Errorf("items facade required")
	}
	grace := lifecycle.DefaultGraceDays
	if params.GraceDays != nil {
		grace = *params.GraceDays
	}
	if grace < 0 {
		return nil, fmt.Errorf("grace days must not be negative")
	}
	return &expirySweeperJob{
		logg:  params.Logger,
		items: params.Items,
		grace: grace,
		now:   time.Now,
	}, nil
}

type expirySweeperJob struct {
	logg  *logger.Logger
	items itemsFacade
	grace int
	now   func() time.Time
}

func (j *expirySweeperJob) Name() string { return expirySweeperJobName }

func (j *expirySweeperJob) Run(ctx context.Context) error {
	listed := j.items.List(ctx)
	if listed.Fallback {
		// demo records do not exist remotely
		j.logg.Warn(j.logg.WithField(ctx, "fallback", true), "item backend unavailable; nothing swept this cycle")
		return nil
	}

	now := j.now()
	var candidates, deleted, absent, failed int
	for _, item := range listed.Items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !j.expired(item, now) {
			continue
		}
		candidates++

		itemCtx := j.logg.WithItemID(ctx, item.ID)
		result, err := j.items.Delete(itemCtx, item.ID)
		switch {
		case err != nil:
			failed++
			j.logg.Warn(j.logg.WithField(itemCtx, "error", err.Error()), "expired item delete failed; retrying next sweep")
		case result.Demo:
			failed++
			j.logg.Warn(j.logg.WithField(itemCtx, "error", errString(result.Cause)), "expired item delete was not applied; retrying next sweep")
		case !result.Existed:
			absent++
		default:
			deleted++
		}
	}

	j.logg.Info(j.logg.WithFields(ctx, map[string]any{
		"grace_days": j.grace,
		"scanned":    len(listed.Items),
		"candidates": candidates,
		"deleted":    deleted,
		"absent":     absent,
		"failed":     failed,
	}), "expiry sweep complete")
	return nil
}

func (j *expirySweeperJob) expired(item types.Item, now time.Time) bool {
	derived := lifecycle.Resolve(item.CreatedAt, lifecycle.OptionalDuration(item.Duration), now)
	if lifecycle.WithOverride(item.Status, derived) == enums.QuizStatusPaused {
		return false
	}
	return lifecycle.ExpiredBeyondGrace(item.CreatedAt, lifecycle.OptionalDuration(item.Duration), j.grace, now)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
