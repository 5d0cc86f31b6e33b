package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/quizwizard-backend/internal/itemsclient"
	"github.com/angelmondragon/quizwizard-backend/internal/quizview"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	list      itemsclient.ListResult
	delResult itemsclient.WriteResult
	delErr    error
	deleted   []int64
}

func (s *stubStore) List(context.Context) itemsclient.ListResult { return s.list }

func (s *stubStore) Delete(_ context.Context, id int64) (itemsclient.WriteResult, error) {
	s.deleted = append(s.deleted, id)
	return s.delResult, s.delErr
}

func newTestManager(t *testing.T, store *stubStore) *Manager {
	t.Helper()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	decorator := quizview.NewDecorator(
		quizview.WithSampler(quizview.NewSeededSampler(3)),
		quizview.WithClock(func() time.Time { return now }),
	)
	m, err := NewManager(store, decorator, logger.Nop())
	require.NoError(t, err)
	return m
}

func TestLoadWithBackendData(t *testing.T) {
	created := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)
	store := &stubStore{list: itemsclient.ListResult{Items: []types.Item{
		{ID: 1, Product: "A", Price: 10, MinDiscount: 10, MaxDiscount: 20, Duration: 7, CreatedAt: &created},
		{ID: 2, Product: "B", Price: 10, MinDiscount: 10, MaxDiscount: 20, Duration: 1, CreatedAt: &created},
	}}}

	overview := newTestManager(t, store).Load(context.Background())
	assert.False(t, overview.Fallback)
	assert.Empty(t, overview.Banner)
	require.Len(t, overview.Quizzes, 2)
	assert.Equal(t, 1, overview.Summary.Active)
	assert.Equal(t, 1, overview.Summary.Completed)
	assert.False(t, overview.Summary.MetricsAvailable)
}

func TestLoadFallbackSetsBanner(t *testing.T) {
	store := &stubStore{list: itemsclient.ListResult{Items: itemsclient.DemoItems(), Fallback: true}}

	overview := newTestManager(t, store).Load(context.Background())
	assert.True(t, overview.Fallback)
	assert.Equal(t, "Unable to fetch quiz data. Showing demo data instead.", overview.Banner)
	assert.Len(t, overview.Quizzes, 4)
	assert.Equal(t, 1, overview.Summary.Paused)
}

func TestManagerDelete(t *testing.T) {
	cases := []struct {
		name    string
		result  itemsclient.WriteResult
		err     error
		want    DeleteOutcome
		wantErr bool
	}{
		{name: "deleted", result: itemsclient.WriteResult{Existed: true}, want: DeleteOutcome{Notice: noticeDeleted, Existed: true}},
		{name: "absent", result: itemsclient.WriteResult{Existed: false}, want: DeleteOutcome{Notice: noticeAbsent}},
		{name: "demo", result: itemsclient.WriteResult{Demo: true}, want: DeleteOutcome{Notice: noticeDemoDel, Demo: true}},
		{name: "strict failure", err: errors.New("down"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{delResult: tc.result, delErr: tc.err}
			got, err := newTestManager(t, store).Delete(context.Background(), 9)
			assert.Equal(t, []int64{9}, store.deleted)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
