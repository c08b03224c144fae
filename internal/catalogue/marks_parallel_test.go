//go:build testutil
// +build testutil

package catalogue_test

import (
	"sync"
	"testing"

	"github.com/Spok95/online-catalogue/internal/models"
)

func TestAddMark_Parallel(t *testing.T) {
	ctx, repo := setup(t)
	teacher := mustTeacher(t, repo, "Ionescu", models.Instructor)
	math := mustSubject(t, repo, "Math", teacher.ID)
	st1 := mustStudent(t, repo, "Ana", "Pop", 17)
	st2 := mustStudent(t, repo, "Dan", "Lup", 16)

	wg := sync.WaitGroup{}
	errs := make(chan error, 100)
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- repo.AddMark(ctx, st1.ID, math.ID, 10)
		}()
		go func() {
			defer wg.Done()
			errs <- repo.AddMark(ctx, st2.ID, math.ID, 6)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}

	m1, _ := repo.ListMarks(ctx, st1.ID, nil)
	m2, _ := repo.ListMarks(ctx, st2.ID, nil)
	if len(m1) != 50 || len(m2) != 50 {
		t.Fatalf("expected 50 marks each, got %d and %d", len(m1), len(m2))
	}

	ranked, err := repo.StudentsOrderedByAverage(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 2 || ranked[0].Average != 10 || ranked[1].Average != 6 {
		t.Fatalf("unexpected ranking %+v", ranked)
	}
}

func BenchmarkAddMark(b *testing.B) {
	ctx := b.Context()
	if err := h.Reset(ctx); err != nil {
		b.Fatal(err)
	}
	repo := newRepo()
	teacher, err := repo.CreateTeacher(ctx, "Bench", models.Instructor)
	if err != nil {
		b.Fatal(err)
	}
	subject, err := repo.AddSubject(ctx, "Bench", teacher.ID)
	if err != nil {
		b.Fatal(err)
	}
	student, err := repo.CreateStudent(ctx, catalogueStudent("Bench", "Mark", 15))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = repo.AddMark(ctx, student.ID, subject.ID, 7)
		}
	})
}

func BenchmarkStudentsOrderedByAverage(b *testing.B) {
	ctx := b.Context()
	if err := h.Reset(ctx); err != nil {
		b.Fatal(err)
	}
	repo := newRepo()
	if _, err := repo.SeedDemo(ctx); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.StudentsOrderedByAverage(ctx, true); err != nil {
			b.Fatal(err)
		}
	}
}
