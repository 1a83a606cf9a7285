package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yw-tools/classtrack/internal/ledger"
	"github.com/yw-tools/classtrack/internal/models"
)

type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

type Workbook struct {
	File *excelize.File
}

// BuildWorkbook собирает журнал класса: лист учеников с рейтингом,
// лист записей о баллах и лист отметок о сдаче. Время печатается в
// часовом поясе школы.
func BuildWorkbook(students []*models.Student, loc *time.Location) (*Workbook, error) {
	if loc == nil {
		loc = time.Local
	}
	sheets := []SheetSpec{
		studentsSheet(students),
		pointsSheet(students, loc),
		recitationsSheet(students, loc),
	}
	return newWorkbook(sheets)
}

func studentsSheet(students []*models.Student) SheetSpec {
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rank := ledger.GetRank(st.TotalPoints)
		rows = append(rows, []string{
			st.Name,
			st.StudentID,
			strconv.Itoa(st.TotalPoints),
			rank.Name,
			strconv.Itoa(ledger.ProgressToNextRank(st.TotalPoints)) + "%",
		})
	}
	return SheetSpec{
		Title:  "学生",
		Header: []string{"姓名", "学号", "总分", "段位", "升段进度"},
		Rows:   rows,
	}
}

func pointsSheet(students []*models.Student, loc *time.Location) SheetSpec {
	var rows [][]string
	for _, st := range students {
		for _, e := range st.PointsHistory {
			amount := strconv.Itoa(e.Amount)
			if e.Amount > 0 {
				amount = "+" + amount
			}
			rows = append(rows, []string{
				st.Name,
				st.StudentID,
				e.Timestamp.In(loc).Format("2006-01-02 15:04"),
				amount,
				e.Category,
				e.Description,
			})
		}
	}
	return SheetSpec{
		Title:  "积分记录",
		Header: []string{"姓名", "学号", "时间", "分值", "类别", "说明"},
		Rows:   rows,
	}
}

func recitationsSheet(students []*models.Student, loc *time.Location) SheetSpec {
	var rows [][]string
	for _, st := range students {
		for _, r := range st.Recitations {
			status := "未完成"
			if r.Status == models.Completed {
				status = "已完成"
			}
			rows = append(rows, []string{
				st.Name,
				st.StudentID,
				r.TextID,
				status,
				strconv.Itoa(r.Points),
				r.Notes,
				r.Timestamp.In(loc).Format("2006-01-02 15:04"),
			})
		}
	}
	return SheetSpec{
		Title:  "背诵记录",
		Header: []string{"姓名", "学号", "篇目", "状态", "加分", "备注", "时间"},
		Rows:   rows,
	}
}

func newWorkbook(sheets []SheetSpec) (*Workbook, error) {
	f := excelize.NewFile()

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, s := range sheets {
		name := s.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("new sheet: %w", err)
			}
		}
		for col, h := range s.Header {
			cell := fmt.Sprintf("%s1", colName(col+1))
			if err := f.SetCellStr(name, cell, h); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		// стиль заголовков + автофильтр в первой строке
		end := colName(len(s.Header)) + "1"
		_ = f.SetCellStyle(name, "A1", end, bold)
		_ = f.AutoFilter(name, "A1:"+end, nil)

		for r, row := range s.Rows {
			for c, val := range row {
				cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
				if err := f.SetCellStr(name, cell, val); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}
		// эвристическая ширина: по заголовку и первым строкам
		for c := 1; c <= len(s.Header); c++ {
			maxim := len(s.Header[c-1])
			for r := 0; r < minim(50, len(s.Rows)); r++ {
				if l := len(s.Rows[r][c-1]); l > maxim {
					maxim = l
				}
			}
			w := float64(maxim) * 0.9
			if w < 12 {
				w = 12
			}
			if w > 40 {
				w = 40
			}
			_ = f.SetColWidth(name, colName(c), colName(c), w)
		}
	}
	return &Workbook{File: f}, nil
}

func (w *Workbook) Save(path string) error {
	return w.File.SaveAs(path)
}

// DefaultFilename — имя файла с датой выгрузки.
func DefaultFilename() string {
	return fmt.Sprintf("班级记录_%s.xlsx", time.Now().Format("2006-01-02"))
}

// helpers
func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

func minim(a, b int) int {
	if a < b {
		return a
	}
	return b
}
