package dashboard

import (
	"context"
	"fmt"

	"github.com/angelmondragon/quizwizard-backend/internal/itemsclient"
	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/logger"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

var (
	noticeCreated = Notice{
		Kind:        NoticeSuccess,
		Title:       "Quiz Created Successfully!",
		Description: "Your product discount quiz has been created and is now active.",
	}
	noticeCreatedDemo = Notice{
		Kind:        NoticeDemo,
		Title:       "Quiz Created (Demo Mode)",
		Description: "Your quiz has been created successfully in demo mode.",
	}
	noticeCreateFailed = Notice{
		Kind:  NoticeError,
		Title: "Quiz Creation Failed",
	}
)

type itemCreator interface {
	Create(ctx context.Context, req types.CreateItemRequest) (itemsclient.WriteResult, error)
}

// Creator runs the create-quiz form submission.
type Creator struct {
	items itemCreator
	logg  *logger.Logger
}

func NewCreator(items itemCreator, logg *logger.Logger) (*Creator, error) {
	if items == nil {
		return nil, fmt.Errorf("items facade required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Creator{items: items, logg: logg}, nil
}

// SubmitOutcome is the state of the form after a submission reached the backend.
type SubmitOutcome struct {
	Form   FormState               `json:"form"`
	Notice Notice                  `json:"notice"`
	Item   *types.Item             `json:"item,omitempty"`
	Demo   bool                    `json:"demo"`
	Result itemsclient.WriteResult `json:"-"`
}

// Submit validates the form and sends one create request. Invalid input returns a
// validation error without contacting the backend and leaves the form to the caller.
// Once a request was sent the form is always reset, whatever the outcome.
func (c *Creator) Submit(ctx context.Context, form FormState) (SubmitOutcome, error) {
	req, err := form.ToCreateRequest()
	if err != nil {
		return SubmitOutcome{Form: form}, err
	}

	ctx = c.logg.WithField(ctx, "product", req.Product)
	result, err := c.items.Create(ctx, req)
	if err != nil {
		c.logg.Error(ctx, "quiz creation failed", err)
		return SubmitOutcome{Notice: noticeCreateFailed, Result: result}, err
	}

	outcome := SubmitOutcome{Item: result.Item, Demo: result.Demo, Result: result}
	if result.Demo {
		outcome.Notice = noticeCreatedDemo
	} else {
		outcome.Notice = noticeCreated
	}
	c.logg.Info(c.logg.WithField(ctx, "demo", result.Demo), "quiz submitted")
	return outcome, nil
}

// SubmitState runs Submit as the SubmitStarted/SubmitFinished pair on a view state.
func (c *Creator) SubmitState(ctx context.Context, s State) (State, error) {
	s = Reduce(s, SubmitStarted{})
	outcome, err := c.Submit(ctx, s.Form)
	if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		// nothing was sent; keep the input for correction
		s.Submitting = false
		return s, err
	}
	return Reduce(s, SubmitFinished{Notice: outcome.Notice}), err
}
