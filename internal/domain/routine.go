package domain

import (
	"strings"
	"time"
)

// CompletionDateLayout is the key format of Routine.Completions.
const CompletionDateLayout = "2006-01-02"

// Habit is one step of a routine. StackedAfter names the habit it follows.
type Habit struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Anchor       bool    `json:"anchor"`
	StackedAfter *string `json:"stacked_after,omitempty"`
	Time         *string `json:"time,omitempty"`
}

// Routine groups habits and records which of them were done on each day.
type Routine struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Name        string              `json:"name"`
	Habits      []Habit             `json:"habits"`
	Completions map[string][]string `json:"completions"`
}

func NewRoutine(id, userID, name string) *Routine {
	return &Routine{
		ID:          id,
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Habits:      []Habit{},
		Completions: map[string][]string{},
	}
}

func (r *Routine) Validate() error {
	var errs ValidationErrors
	errs = append(errs, ValidateID("user_id", r.UserID)...)
	if r.Name == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	errs = append(errs, ValidateHabits(r.Habits)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateHabits checks ids are present and unique and that every stacked_after points at
// another habit of the same list.
func ValidateHabits(habits []Habit) ValidationErrors {
	var errs ValidationErrors
	ids := make(map[string]struct{}, len(habits))
	for _, h := range habits {
		if strings.TrimSpace(h.ID) == "" {
			errs = append(errs, NewMissingFieldError("habits.id"))
			continue
		}
		if _, dup := ids[h.ID]; dup {
			errs = append(errs, NewInvalidValueError("habits.id", "duplicate habit id "+h.ID))
		}
		ids[h.ID] = struct{}{}
		if strings.TrimSpace(h.Name) == "" {
			errs = append(errs, NewMissingFieldError("habits.name"))
		}
	}
	for _, h := range habits {
		if h.StackedAfter == nil || *h.StackedAfter == "" {
			continue
		}
		if *h.StackedAfter == h.ID {
			errs = append(errs, NewInvalidValueError("habits.stacked_after", "habit cannot be stacked after itself"))
			continue
		}
		if _, ok := ids[*h.StackedAfter]; !ok {
			errs = append(errs, NewInvalidValueError("habits.stacked_after", "unknown habit "+*h.StackedAfter))
		}
	}
	return errs
}

// RoutineUpdate is a partial update; nil fields are left untouched.
type RoutineUpdate struct {
	Name   *string `json:"name,omitempty"`
	Habits []Habit `json:"habits,omitempty"`
}

func (u RoutineUpdate) IsEmpty() bool {
	return u.Name == nil && u.Habits == nil
}

func (u RoutineUpdate) Validate() error {
	var errs ValidationErrors
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, NewInvalidValueError("name", "must not be blank"))
	}
	if u.Habits != nil {
		errs = append(errs, ValidateHabits(u.Habits)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HabitCompletion lists the habits done on one day, replacing any earlier list for it.
type HabitCompletion struct {
	Date     string   `json:"date"`
	HabitIDs []string `json:"habit_ids"`
}

func (c HabitCompletion) Validate() error {
	var errs ValidationErrors
	if c.Date == "" {
		errs = append(errs, NewMissingFieldError("date"))
	} else if _, err := time.Parse(CompletionDateLayout, c.Date); err != nil {
		errs = append(errs, NewInvalidFormatError("date", c.Date))
	}
	if c.HabitIDs == nil {
		errs = append(errs, NewMissingFieldError("habit_ids"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
