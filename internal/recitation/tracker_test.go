package recitation_test

import (
	"testing"

	"github.com/yw-tools/classtrack/internal/models"
	"github.com/yw-tools/classtrack/internal/recitation"
)

func TestRecord_Upsert(t *testing.T) {
	st := &models.Student{ID: "s1"}

	recitation.Record(st, "《关雎》", models.Completed, "", 0)
	recitation.Record(st, "《蒹葭》", models.Completed, "", 0)

	// пересдача не плодит вторую запись и не двигает позицию
	recitation.Record(st, "《关雎》", models.Incomplete, "late", 0)

	if len(st.Recitations) != 2 {
		t.Fatalf("ожидали 2 отметки, получили %d", len(st.Recitations))
	}
	// 《蒹葭》 добавлялась последней, значит стоит первой; 《关雎》 осталась на месте
	if st.Recitations[0].TextID != "《蒹葭》" || st.Recitations[1].TextID != "《关雎》" {
		t.Fatalf("порядок отметок нарушен: %+v", st.Recitations)
	}
	got := st.Recitations[1]
	if got.Status != models.Incomplete || got.Notes != "late" {
		t.Fatalf("пересдача должна заменять запись целиком: %+v", got)
	}
}

func TestRecord_PrependNew(t *testing.T) {
	st := &models.Student{ID: "s1"}
	recitation.Record(st, "《式微》", models.Completed, "", 0)
	recitation.Record(st, "《子衿》", models.Completed, "", 2)

	if st.Recitations[0].TextID != "《子衿》" {
		t.Fatalf("новая отметка должна вставать в начало: %+v", st.Recitations)
	}
	if st.Recitations[0].Points != 2 {
		t.Fatalf("бонусные баллы потерялись: %+v", st.Recitations[0])
	}
}

func TestStatus(t *testing.T) {
	st := &models.Student{ID: "s1"}
	if got := recitation.Status(st, "《关雎》"); got != "" {
		t.Fatalf("без отметки ожидали пустой статус, получили %q", got)
	}
	recitation.Record(st, "《关雎》", models.Completed, "", 0)
	if got := recitation.Status(st, "《关雎》"); got != models.Completed {
		t.Fatalf("ожидали completed, получили %q", got)
	}
}

func TestTextInUse(t *testing.T) {
	students := []*models.Student{
		{ID: "a"},
		{ID: "b", Recitations: []models.RecitationEntry{{TextID: "《关雎》"}}},
	}
	if !recitation.TextInUse(students, "《关雎》") {
		t.Fatal("текст используется, guard этого не увидел")
	}
	if recitation.TextInUse(students, "《蒹葭》") {
		t.Fatal("текст не используется, guard ошибся")
	}
}
