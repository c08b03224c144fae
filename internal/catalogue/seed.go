package catalogue

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/models"
)

var (
	demoTeachers = []struct {
		name    string
		rank    models.Rank
		subject string
	}{
		{"Elena Ionescu", models.Professor, "Mathematics"},
		{"Mihai Popa", models.AssociateProfessor, "Physics"},
		{"Ana Dumitru", models.Instructor, "History"},
	}
	demoFirstNames = []string{"Andrei", "Ioana", "Matei", "Sofia", "Luca"}
	demoLastNames  = []string{"Rusu", "Stan", "Marin"}
)

// SeedDemo fills an empty catalogue with a few teachers, subjects, students
// and marks. It reports false and does nothing when any student or teacher
// already exists.
func (r *Repository) SeedDemo(ctx context.Context) (bool, error) {
	st, err := r.Stats(ctx)
	if err != nil {
		return false, err
	}
	if st.Students > 0 || st.Teachers > 0 {
		return false, nil
	}

	var subjects []int64
	for _, d := range demoTeachers {
		t, err := r.CreateTeacher(ctx, d.name, d.rank)
		if err != nil {
			return false, fmt.Errorf("seed teacher %s: %w", d.name, err)
		}
		s, err := r.AddSubject(ctx, d.subject, t.ID)
		if err != nil {
			return false, fmt.Errorf("seed subject %s: %w", d.subject, err)
		}
		subjects = append(subjects, s.ID)
	}

	n := 0
	for _, last := range demoLastNames {
		for _, first := range demoFirstNames {
			n++
			s, err := r.CreateStudent(ctx, StudentFields{FirstName: first, LastName: last, Age: 14 + n%5})
			if err != nil {
				return false, fmt.Errorf("seed student %s %s: %w", first, last, err)
			}
			// deterministic spread over 1..10
			for i, subj := range subjects {
				v := (n*3+i*7)%10 + 1
				if err := r.AddMark(ctx, s.ID, subj, v); err != nil {
					return false, fmt.Errorf("seed mark: %w", err)
				}
			}
		}
	}
	r.log.Info("demo catalogue seeded",
		zap.Int("teachers", len(demoTeachers)),
		zap.Int("students", n))
	return true, nil
}
