// Package dashboard holds the headless dashboard: an immutable view state driven by
// Reduce, and the create and manage flows that talk to the item backend.
package dashboard

import (
	"fmt"

	"github.com/angelmondragon/quizwizard-backend/pkg/enums"
)

// FallbackBanner is shown while the quiz list comes from demo data.
const FallbackBanner = "Unable to fetch quiz data. Showing demo data instead."

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeDemo    NoticeKind = "demo"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message raised by a completed action.
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
}

// State is the whole dashboard view. Values are never mutated in place.
type State struct {
	Tab        enums.DashboardTab `json:"tab"`
	Form       FormState          `json:"form"`
	Submitting bool               `json:"submitting"`
	Notice     *Notice            `json:"notice,omitempty"`
	Banner     string             `json:"banner,omitempty"`
}

func InitialState() State {
	return State{Tab: enums.DashboardTabPosts}
}

// Action is a state transition understood by Reduce.
type Action interface {
	apply(State) State
}

type SelectTab struct{ Tab enums.DashboardTab }

type ChangeField struct {
	Field Field
	Value string
}

type ResetForm struct{}

type SubmitStarted struct{}

type SubmitFinished struct{ Notice Notice }

type ItemsLoaded struct{ Fallback bool }

// Reduce returns the state that follows s after a. Unknown or invalid actions return s unchanged.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a SelectTab) apply(s State) State {
	if !a.Tab.IsValid() {
		return s
	}
	s.Tab = a.Tab
	return s
}

func (a ChangeField) apply(s State) State {
	if s.Submitting {
		return s
	}
	if form, ok := s.Form.With(a.Field, a.Value); ok {
		s.Form = form
	}
	return s
}

func (ResetForm) apply(s State) State {
	s.Form = FormState{}
	return s
}

func (SubmitStarted) apply(s State) State {
	s.Submitting = true
	s.Notice = nil
	return s
}

func (a SubmitFinished) apply(s State) State {
	notice := a.Notice
	s.Submitting = false
	s.Form = FormState{}
	s.Notice = &notice
	return s
}

func (a ItemsLoaded) apply(s State) State {
	if a.Fallback {
		s.Banner = FallbackBanner
	} else {
		s.Banner = ""
	}
	return s
}

// RawAction is the JSON form of an Action.
type RawAction struct {
	Type     string  `json:"type" validate:"required"`
	Tab      string  `json:"tab,omitempty"`
	Field    string  `json:"field,omitempty"`
	Value    string  `json:"value,omitempty"`
	Notice   *Notice `json:"notice,omitempty"`
	Fallback bool    `json:"fallback,omitempty"`
}

// ParseAction converts a RawAction into a typed Action.
func ParseAction(raw RawAction) (Action, error) {
	switch raw.Type {
	case "select_tab":
		tab, err := enums.ParseDashboardTab(raw.Tab)
		if err != nil {
			return nil, err
		}
		return SelectTab{Tab: tab}, nil
	case "change_field":
		if _, ok := (FormState{}).With(Field(raw.Field), ""); !ok {
			return nil, fmt.Errorf("unknown form field %q", raw.Field)
		}
		return ChangeField{Field: Field(raw.Field), Value: raw.Value}, nil
	case "reset_form":
		return ResetForm{}, nil
	case "submit_started":
		return SubmitStarted{}, nil
	case "submit_finished":
		if raw.Notice == nil {
			return nil, fmt.Errorf("submit_finished requires a notice")
		}
		return SubmitFinished{Notice: *raw.Notice}, nil
	case "items_loaded":
		return ItemsLoaded{Fallback: raw.Fallback}, nil
	default:
		return nil, fmt.Errorf("unknown action type %q", raw.Type)
	}
}
