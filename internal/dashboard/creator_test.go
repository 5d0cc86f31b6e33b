package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/quizwizard-backend/internal/itemsclient"
	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCreator struct {
	result itemsclient.WriteResult
	err    error
	calls  []types.CreateItemRequest
}

func (s *stubCreator) Create(_ context.Context, req types.CreateItemRequest) (itemsclient.WriteResult, error) {
	s.calls = append(s.calls, req)
	return s.result, s.err
}

func validForm() FormState {
	return FormState{Product: "Cat Tree", Price: "89.99", MinDiscount: "10", MaxDiscount: "25", Coupon: "tree25", Duration: "14"}
}

func newTestCreator(t *testing.T, stub *stubCreator) *Creator {
	t.Helper()
	creator, err := NewCreator(stub, logger.Nop())
	require.NoError(t, err)
	return creator
}

func TestSubmitSuccess(t *testing.T) {
	stub := &stubCreator{result: itemsclient.WriteResult{Item: &types.Item{ID: 5}, Existed: true}}
	outcome, err := newTestCreator(t, stub).Submit(context.Background(), validForm())

	require.NoError(t, err)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "TREE25", stub.calls[0].Coupon)
	assert.Equal(t, 14, stub.calls[0].Duration)
	assert.Equal(t, "Quiz Created Successfully!", outcome.Notice.Title)
	assert.True(t, outcome.Form.IsEmpty())
	assert.Equal(t, int64(5), outcome.Item.ID)
}

func TestSubmitDemoMode(t *testing.T) {
	stub := &stubCreator{result: itemsclient.WriteResult{Demo: true}}
	outcome, err := newTestCreator(t, stub).Submit(context.Background(), validForm())

	require.NoError(t, err)
	assert.True(t, outcome.Demo)
	assert.Equal(t, "Quiz Created (Demo Mode)", outcome.Notice.Title)
	assert.True(t, outcome.Form.IsEmpty(), "form resets even in demo mode")
}

func TestSubmitInvalidNumbersSendsNothing(t *testing.T) {
	stub := &stubCreator{}
	form := validForm()
	form.Price = "twelve"
	form.MaxDiscount = "25%"

	outcome, err := newTestCreator(t, stub).Submit(context.Background(), form)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Empty(t, stub.calls)
	assert.Equal(t, form, outcome.Form, "form is left untouched")

	details, ok := pkgerrors.As(err).Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "price")
	assert.Contains(t, details, "max_discount")
}

func TestSubmitNaNPriceSendsNothing(t *testing.T) {
	stub := &stubCreator{result: itemsclient.WriteResult{Demo: true}}
	form := validForm()
	form.Price = "NaN"

	outcome, err := newTestCreator(t, stub).Submit(context.Background(), form)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Empty(t, stub.calls)
	assert.False(t, outcome.Demo)
	assert.Equal(t, form, outcome.Form)
}

func TestSubmitStrictFailureStillResets(t *testing.T) {
	stub := &stubCreator{err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("503"), "create")}
	outcome, err := newTestCreator(t, stub).Submit(context.Background(), validForm())

	require.Error(t, err)
	assert.Equal(t, NoticeError, outcome.Notice.Kind)
	assert.True(t, outcome.Form.IsEmpty())
}

func TestSubmitState(t *testing.T) {
	stub := &stubCreator{result: itemsclient.WriteResult{Existed: true}}
	creator := newTestCreator(t, stub)

	s := InitialState()
	s.Form = validForm()
	next, err := creator.SubmitState(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, next.Submitting)
	assert.True(t, next.Form.IsEmpty())
	require.NotNil(t, next.Notice)
	assert.Equal(t, NoticeSuccess, next.Notice.Kind)

	bad := InitialState()
	bad.Form = FormState{Product: "x", Price: "abc", MinDiscount: "1", MaxDiscount: "2"}
	kept, err := creator.SubmitState(context.Background(), bad)
	require.Error(t, err)
	assert.False(t, kept.Submitting)
	assert.Equal(t, bad.Form, kept.Form)
}

func TestNewCreatorValidation(t *testing.T) {
	_, err := NewCreator(nil, logger.Nop())
	assert.Error(t, err)
	_, err = NewCreator(&stubCreator{}, nil)
	assert.Error(t, err)
}
