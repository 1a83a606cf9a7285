package classroom_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/yw-tools/classtrack/internal/classroom"
	"github.com/yw-tools/classtrack/internal/models"
	"github.com/yw-tools/classtrack/internal/store"
)

func newService(t *testing.T, st store.Store) *classroom.Service {
	t.Helper()
	svc, err := classroom.New(st, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestNew_SeedsDefaults(t *testing.T) {
	svc := newService(t, store.NewMemory())

	if len(svc.Students()) != 0 {
		t.Fatal("пустое хранилище — пустой список учеников")
	}
	if got := svc.PointCategories(); len(got) != len(models.DefaultPointCategories) {
		t.Fatalf("ожидали стартовые категории, получили %v", got)
	}
	cats := svc.RecitationCategories()
	if len(cats) != 1 || cats[0].Name != models.DefaultRecitationCategoryName {
		t.Fatalf("ожидали один раздел по умолчанию, получили %v", cats)
	}
	texts := svc.RecitationTexts()
	if len(texts) != len(models.DefaultRecitationTexts) {
		t.Fatalf("ожидали стартовые тексты, получили %d", len(texts))
	}
	for _, tx := range texts {
		if tx.CategoryID != cats[0].ID {
			t.Fatalf("стартовый текст вне раздела по умолчанию: %+v", tx)
		}
	}
	if len(svc.LoadWarnings()) != 0 {
		t.Fatalf("при чистом первом запуске предупреждений быть не должно: %v", svc.LoadWarnings())
	}
}

func TestAddPoints_Flow(t *testing.T) {
	svc := newService(t, store.NewMemory())
	st, err := svc.CreateStudent("小明", "2023001")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.AddPoints(st.ID, 3, "x", "背诵"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddPoints(st.ID, -1, "y", "背诵"); err != nil {
		t.Fatal(err)
	}

	got := svc.FindStudent(st.ID)
	if got.TotalPoints != 2 {
		t.Fatalf("ожидали сумму 2, получили %d", got.TotalPoints)
	}
	if got.PointsHistory[0].Description != "y" || got.PointsHistory[1].Description != "x" {
		t.Fatalf("история должна идти от новых к старым: %+v", got.PointsHistory)
	}

	if _, err := svc.AddPoints("нет такого", 1, "x", ""); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("ожидали NotFound, получили %v", err)
	}
}

func TestRecordRecitation_Upsert(t *testing.T) {
	svc := newService(t, store.NewMemory())
	st, _ := svc.CreateStudent("小明", "2023001")

	if _, err := svc.RecordRecitation(st.ID, "《关雎》", models.Completed, "", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordRecitation(st.ID, "《关雎》", models.Incomplete, "late", 0); err != nil {
		t.Fatal(err)
	}

	got := svc.FindStudent(st.ID)
	if len(got.Recitations) != 1 {
		t.Fatalf("upsert должен оставлять одну запись, получили %d", len(got.Recitations))
	}
	if got.Recitations[0].Status != models.Incomplete || got.Recitations[0].Notes != "late" {
		t.Fatalf("запись не заменилась: %+v", got.Recitations[0])
	}

	if _, err := svc.RecordRecitation(st.ID, "《关雎》", "maybe", "", 0); err == nil {
		t.Fatal("неизвестный статус должен отклоняться")
	}
}

func TestDeleteRecitationText_Guard(t *testing.T) {
	svc := newService(t, store.NewMemory())
	st, _ := svc.CreateStudent("小明", "2023001")

	if _, err := svc.RecordRecitation(st.ID, "《关雎》", models.Completed, "", 0); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteRecitationText("《关雎》"); !errors.Is(err, models.ErrInUse) {
		t.Fatalf("занятый текст должен отклоняться, получили %v", err)
	}

	// у 《蒹葭》 отметок нет — удаляется
	if err := svc.DeleteRecitationText("《蒹葭》"); err != nil {
		t.Fatal(err)
	}
	for _, tx := range svc.AllRecitationTexts() {
		if tx.Text == "《蒹葭》" {
			t.Fatal("текст остался в каталоге после удаления")
		}
	}
}

func TestCategoryGuards(t *testing.T) {
	svc := newService(t, store.NewMemory())
	st, _ := svc.CreateStudent("小明", "2023001")

	// категория баллов занята записью журнала
	if _, err := svc.AddPoints(st.ID, 3, "x", "背诵"); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeletePointCategory("背诵"); !errors.Is(err, models.ErrInUse) {
		t.Fatalf("ожидали InUse, получили %v", err)
	}
	if err := svc.DeletePointCategory("翻译"); err != nil {
		t.Fatal(err)
	}

	// раздел занят текстами; пустой — удаляется, фильтр сбрасывается
	cat, err := svc.AddRecitationCategory("课外")
	if err != nil {
		t.Fatal(err)
	}
	if svc.SelectedCategoryID() != cat.ID {
		t.Fatal("новый раздел должен становиться активным")
	}
	defaultCat := svc.RecitationCategories()[0]
	if err := svc.DeleteRecitationCategory(defaultCat.ID); !errors.Is(err, models.ErrInUse) {
		t.Fatalf("раздел с текстами должен отклоняться, получили %v", err)
	}
	if err := svc.DeleteRecitationCategory(cat.ID); err != nil {
		t.Fatal(err)
	}
	if svc.SelectedCategoryID() != "" {
		t.Fatal("удаление активного раздела должно сбрасывать фильтр")
	}
}

func TestSelectCategory_Filter(t *testing.T) {
	svc := newService(t, store.NewMemory())
	cat, _ := svc.AddRecitationCategory("课外")
	if _, err := svc.AddRecitationText("岳阳楼记", cat.ID); err != nil {
		t.Fatal(err)
	}

	// новый раздел активен — видим только его текст
	got := svc.RecitationTexts()
	if len(got) != 1 || got[0].Text != "《岳阳楼记》" {
		t.Fatalf("фильтр по активному разделу не работает: %+v", got)
	}

	if err := svc.SelectRecitationCategory(""); err != nil {
		t.Fatal(err)
	}
	if got := svc.RecitationTexts(); len(got) != len(models.DefaultRecitationTexts)+1 {
		t.Fatalf("без фильтра ожидали все тексты, получили %d", len(got))
	}
}

func TestAddRecitationText_DefaultCategory(t *testing.T) {
	svc := newService(t, store.NewMemory())

	// фильтр не выбран — текст падает в первый раздел каталога
	tx, err := svc.AddRecitationText("岳阳楼记", "")
	if err != nil {
		t.Fatal(err)
	}
	if tx.CategoryID != svc.RecitationCategories()[0].ID {
		t.Fatalf("текст должен попасть в первый раздел: %+v", tx)
	}

	if _, err := svc.AddRecitationText("醉翁亭记", "нет такого"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("неизвестный раздел должен отклоняться, получили %v", err)
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)

	st, _ := svc.CreateStudent("小明", "2023001")
	svc.AddPoints(st.ID, 3, "x", "背诵")
	svc.RecordRecitation(st.ID, "《关雎》", models.Completed, "認真", 1)
	svc.AddPointCategory("朗读")
	cat, _ := svc.AddRecitationCategory("课外")
	svc.AddRecitationText("岳阳楼记", cat.ID)

	// второй сервис поверх того же хранилища видит то же состояние
	svc2 := newService(t, mem)
	students := svc2.Students()
	if len(students) != 1 {
		t.Fatalf("ученики не пережили перезагрузку: %d", len(students))
	}
	g := students[0]
	if g.TotalPoints != 3 || len(g.PointsHistory) != 1 || len(g.Recitations) != 1 {
		t.Fatalf("истории не пережили перезагрузку: %+v", g)
	}
	if !g.PointsHistory[0].Timestamp.Equal(st.PointsHistory[0].Timestamp) {
		t.Fatal("таймстамп не восстановился после перезагрузки")
	}
	if got := svc2.PointCategories(); got[len(got)-1] != "朗读" {
		t.Fatalf("категории баллов не пережили перезагрузку: %v", got)
	}
	if len(svc2.RecitationCategories()) != 2 {
		t.Fatal("разделы не пережили перезагрузку")
	}
	if len(svc2.AllRecitationTexts()) != len(models.DefaultRecitationTexts)+1 {
		t.Fatal("тексты не пережили перезагрузку")
	}
	// выбор — состояние сеанса, после перезагрузки его нет
	if svc2.SelectedStudentID() != "" {
		t.Fatal("выбор ученика не должен переживать перезагрузку")
	}
}

func TestLegacyTexts_MigratedOnLoad(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(store.KeyRecitationTexts, `["《关雎》","《蒹葭》"]`)

	svc := newService(t, mem)

	texts := svc.AllRecitationTexts()
	if len(texts) != 2 {
		t.Fatalf("ожидали 2 мигрированных текста, получили %d", len(texts))
	}
	defCat := svc.RecitationCategories()[0]
	for _, tx := range texts {
		if tx.ID == "" || tx.CategoryID != defCat.ID {
			t.Fatalf("миграция не присвоила id/раздел: %+v", tx)
		}
	}

	// каталог сразу пересохранён в новом формате
	raw, ok, err := mem.Load(context.Background(), store.KeyRecitationTexts)
	if err != nil || !ok {
		t.Fatalf("снапшот текстов пропал: %v", err)
	}
	if !strings.Contains(raw, `"categoryId"`) {
		t.Fatalf("снапшот остался в старом формате: %s", raw)
	}
}

func TestUnparsableSnapshot_FallsBackWithWarning(t *testing.T) {
	mem := store.NewMemory()
	mem.Seed(store.KeyRoster, "{оборванный JSON")

	svc := newService(t, mem)

	if len(svc.Students()) != 0 {
		t.Fatal("нечитаемый снапшот должен заменяться пустым списком")
	}
	warns := svc.LoadWarnings()
	if len(warns) != 1 || !strings.Contains(warns[0], store.KeyRoster) {
		t.Fatalf("ожидали предупреждение о потере данных, получили %v", warns)
	}
}

func TestDuplicateStudent_Facade(t *testing.T) {
	svc := newService(t, store.NewMemory())
	if _, err := svc.CreateStudent("小明", "2023001"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateStudent("小红", "2023001"); !errors.Is(err, models.ErrDuplicate) {
		t.Fatalf("ожидали Duplicate, получили %v", err)
	}
	if len(svc.Students()) != 1 {
		t.Fatal("отклонённое создание изменило список")
	}
}

func TestToggleSelect_Facade(t *testing.T) {
	svc := newService(t, store.NewMemory())
	st, _ := svc.CreateStudent("小明", "2023001")

	if svc.SelectedStudent() == nil {
		t.Fatal("создание должно выбирать ученика")
	}
	sel, err := svc.ToggleSelect(st.ID)
	if err != nil || sel != "" {
		t.Fatalf("повторный выбор должен снимать выбор: %q %v", sel, err)
	}
	if err := svc.DeleteStudent(st.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteStudent(st.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("ожидали NotFound, получили %v", err)
	}
}

func TestRecitationStatus_Query(t *testing.T) {
	svc := newService(t, store.NewMemory())
	st, _ := svc.CreateStudent("小明", "2023001")

	got, err := svc.RecitationStatus(st.ID, "《关雎》")
	if err != nil || got != "" {
		t.Fatalf("до сдачи ожидали пустой статус: %q %v", got, err)
	}
	svc.RecordRecitation(st.ID, "《关雎》", models.Completed, "", 0)
	got, _ = svc.RecitationStatus(st.ID, "《关雎》")
	if got != models.Completed {
		t.Fatalf("ожидали completed, получили %q", got)
	}
	if _, err := svc.RecitationStatus("нет", "x"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("ожидали NotFound, получили %v", err)
	}
}
