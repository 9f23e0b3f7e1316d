package repository

import (
	"mindflow/internal/domain"
	"mindflow/internal/repository/models"
)

func toModelUser(u *domain.User) *models.User {
	answers := make([]models.AssessmentAnswer, 0, len(u.AssessmentAnswers))
	for _, a := range u.AssessmentAnswers {
		answers = append(answers, models.AssessmentAnswer{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
			Modules:    a.Modules,
		})
	}
	return &models.User{
		ID:                  u.ID,
		CreatedAt:           u.CreatedAt,
		AssessmentCompleted: u.AssessmentCompleted,
		AssessmentAnswers:   answers,
		RecommendedModules:  u.RecommendedModules,
		ModuleScores:        u.ModuleScores,
	}
}

func toDomainUser(m *models.User) *domain.User {
	answers := make([]domain.AssessmentAnswer, 0, len(m.AssessmentAnswers))
	for _, a := range m.AssessmentAnswers {
		answers = append(answers, domain.AssessmentAnswer{
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
			Modules:    a.Modules,
		})
	}
	return &domain.User{
		ID:                  m.ID,
		CreatedAt:           m.CreatedAt,
		AssessmentCompleted: m.AssessmentCompleted,
		AssessmentAnswers:   answers,
		RecommendedModules:  m.RecommendedModules,
		ModuleScores:        m.ModuleScores,
	}
}

func toModelJhanaSession(s *domain.JhanaSession) *models.JhanaSession {
	return &models.JhanaSession{
		ID:        s.ID,
		UserID:    s.UserID,
		Duration:  s.Duration,
		Type:      s.Type,
		Date:      s.Date,
		Completed: s.Completed,
	}
}

func toDomainJhanaSession(m *models.JhanaSession) *domain.JhanaSession {
	return &domain.JhanaSession{
		ID:        m.ID,
		UserID:    m.UserID,
		Duration:  m.Duration,
		Type:      m.Type,
		Date:      m.Date,
		Completed: m.Completed,
	}
}

func toModelLearningCard(c *domain.LearningCard) *models.LearningCard {
	return &models.LearningCard{
		ID:         c.ID,
		UserID:     c.UserID,
		Front:      c.Front,
		Back:       c.Back,
		NextReview: c.NextReview,
		Interval:   c.Interval,
		EaseFactor: c.EaseFactor,
	}
}

func toDomainLearningCard(m *models.LearningCard) *domain.LearningCard {
	return &domain.LearningCard{
		ID:         m.ID,
		UserID:     m.UserID,
		Front:      m.Front,
		Back:       m.Back,
		NextReview: m.NextReview,
		Interval:   m.Interval,
		EaseFactor: m.EaseFactor,
	}
}

func toModelPomodoroSession(s *domain.PomodoroSession) *models.PomodoroSession {
	return &models.PomodoroSession{
		ID:        s.ID,
		UserID:    s.UserID,
		Duration:  s.Duration,
		Task:      s.Task,
		Date:      s.Date,
		Completed: s.Completed,
	}
}

func toDomainPomodoroSession(m *models.PomodoroSession) *domain.PomodoroSession {
	return &domain.PomodoroSession{
		ID:        m.ID,
		UserID:    m.UserID,
		Duration:  m.Duration,
		Task:      m.Task,
		Date:      m.Date,
		Completed: m.Completed,
	}
}

func toModelHabits(habits []domain.Habit) []models.Habit {
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, models.Habit{
			ID:           h.ID,
			Name:         h.Name,
			Anchor:       h.Anchor,
			StackedAfter: h.StackedAfter,
			Time:         h.Time,
		})
	}
	return out
}

func toDomainHabits(habits []models.Habit) []domain.Habit {
	out := make([]domain.Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, domain.Habit{
			ID:           h.ID,
			Name:         h.Name,
			Anchor:       h.Anchor,
			StackedAfter: h.StackedAfter,
			Time:         h.Time,
		})
	}
	return out
}

func toModelRoutine(r *domain.Routine) *models.Routine {
	completions := r.Completions
	if completions == nil {
		completions = map[string][]string{}
	}
	return &models.Routine{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Habits:      toModelHabits(r.Habits),
		Completions: completions,
	}
}

func toDomainRoutine(m *models.Routine) *domain.Routine {
	completions := m.Completions
	if completions == nil {
		completions = map[string][]string{}
	}
	return &domain.Routine{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Habits:      toDomainHabits(m.Habits),
		Completions: completions,
	}
}
