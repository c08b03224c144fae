package export

import (
	"fmt"
	"math"
	"time"

	"github.com/Spok95/online-catalogue/internal/models"
)

const (
	RankingSheet = "Ranking"
	ContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var rankingHeader = []string{"Position", "ID", "Name", "Age", "Average"}

// NewRankingWorkbook lays the students out in the order given, numbering
// positions from 1. Averages are rounded to two decimals.
func NewRankingWorkbook(students []models.StudentWithAverage) (*Workbook, error) {
	rows := make([][]any, 0, len(students))
	for i, s := range students {
		rows = append(rows, []any{i + 1, s.ID, s.Name, s.Age, math.Round(s.Average*100) / 100})
	}
	return NewWorkbook([]SheetSpec{{Title: RankingSheet, Header: rankingHeader, Rows: rows}})
}

func RankingFilename(now time.Time) string {
	return fmt.Sprintf("ranking_%s.xlsx", now.Format("2006-01-02"))
}
