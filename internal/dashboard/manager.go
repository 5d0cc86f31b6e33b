package dashboard

import (
	"context"
	"fmt"

	"github.com/angelmondragon/quizwizard-backend/internal/itemsclient"
	"github.com/angelmondragon/quizwizard-backend/internal/quizview"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
)

var (
	noticeDeleted = Notice{Kind: NoticeSuccess, Title: "Quiz Deleted"}
	noticeAbsent  = Notice{Kind: NoticeSuccess, Title: "Quiz Deleted", Description: "The quiz no longer existed."}
	noticeDemoDel = Notice{Kind: NoticeDemo, Title: "Quiz Deleted (Demo Mode)"}
)

type itemStore interface {
	List(ctx context.Context) itemsclient.ListResult
	Delete(ctx context.Context, id int64) (itemsclient.WriteResult, error)
}

// Manager backs the manage tab: the decorated quiz list and deletes.
type Manager struct {
	items     itemStore
	decorator *quizview.Decorator
	logg      *logger.Logger
}

func NewManager(items itemStore, decorator *quizview.Decorator, logg *logger.Logger) (*Manager, error) {
	if items == nil {
		return nil, fmt.Errorf("items facade required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if decorator == nil {
		decorator = quizview.NewDecorator()
	}
	return &Manager{items: items, decorator: decorator, logg: logg}, nil
}

// Overview is the manage tab payload.
type Overview struct {
	Quizzes  []quizview.ViewItem `json:"quizzes"`
	Summary  quizview.Summary    `json:"summary"`
	Fallback bool                `json:"fallback"`
	Banner   string              `json:"banner,omitempty"`
}

// Load lists and decorates quizzes. It never fails; backend outages yield demo data and a banner.
func (m *Manager) Load(ctx context.Context) Overview {
	listed := m.items.List(ctx)
	views := m.decorator.Decorate(listed.Items)
	overview := Overview{
		Quizzes:  views,
		Summary:  quizview.Summarize(views),
		Fallback: listed.Fallback,
	}
	overview.Banner = Reduce(State{}, ItemsLoaded{Fallback: listed.Fallback}).Banner
	return overview
}

// DeleteOutcome reports what a manage-tab delete did.
type DeleteOutcome struct {
	Notice  Notice `json:"notice"`
	Existed bool   `json:"existed"`
	Demo    bool   `json:"demo"`
}

// Delete removes a quiz by id through the facade.
func (m *Manager) Delete(ctx context.Context, id int64) (DeleteOutcome, error) {
	ctx = m.logg.WithItemID(ctx, id)
	result, err := m.items.Delete(ctx, id)
	if err != nil {
		m.logg.Error(ctx, "quiz delete failed", err)
		return DeleteOutcome{}, err
	}
	switch {
	case result.Demo:
		return DeleteOutcome{Notice: noticeDemoDel, Demo: true}, nil
	case !result.Existed:
		return DeleteOutcome{Notice: noticeAbsent}, nil
	default:
		m.logg.Info(ctx, "quiz deleted")
		return DeleteOutcome{Notice: noticeDeleted, Existed: true}, nil
	}
}
