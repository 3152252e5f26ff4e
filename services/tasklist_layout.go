package services

// TasklistHeaders are the column labels of a tasklist section, in column order.
var TasklistHeaders = []string{
	"RR", "Product Name", "Role", "Milestone", "Region",
	"Skills", "Assignment Tasks", "Hours per Role per Milestone",
	"Duration", "Hours",
}

const (
	// durationCol and hoursCol are zero-based column indexes.
	durationCol = 8
	hoursCol    = 9

	// sectionBufferRows is the number of blank rows between two sections.
	sectionBufferRows = 3
)

// CellInstruction places one value at a zero-based (Row, Col) position.
// Value is either a string or an int64.
type CellInstruction struct {
	Row   int
	Col   int
	Value any
	Bold  bool
}

// LayoutPlan is the ordered list of cell writes for one export. NextRow is
// the first row after the last written row.
type LayoutPlan struct {
	Cells   []CellInstruction
	NextRow int
}

// PlanTasklistLayout lays out the assessment section followed by the
// development section. Each non-empty section gets its own bold header row.
// When both sections are present they are separated by three blank rows.
// When both are empty the plan is empty, without a header.
func PlanTasklistLayout(assessment, development Section) LayoutPlan {
	var plan LayoutPlan

	if len(assessment) > 0 {
		plan.addSection(0, assessment)

		// Blank rows keep the two sections visually apart.
		assessmentEnd := len(assessment) + 1
		for r := assessmentEnd; r < assessmentEnd+sectionBufferRows; r++ {
			for col := range TasklistHeaders {
				plan.add(r, col, "", false)
			}
		}
		plan.NextRow = assessmentEnd + sectionBufferRows
	}

	if len(development) > 0 {
		plan.addSection(plan.NextRow, development)
	}

	return plan
}

// addSection writes a header row at start followed by one row per task.
func (p *LayoutPlan) addSection(start int, tasks Section) {
	for col, h := range TasklistHeaders {
		p.add(start, col, h, true)
	}
	for i, t := range tasks {
		r := start + 1 + i
		for col, v := range taskCells(t) {
			p.add(r, col, v, col == durationCol && t.IsTotal())
		}
	}
}

func (p *LayoutPlan) add(row, col int, value any, bold bool) {
	p.Cells = append(p.Cells, CellInstruction{Row: row, Col: col, Value: value, Bold: bold})
	if row+1 > p.NextRow {
		p.NextRow = row + 1
	}
}

// taskCells returns the task's values in column order.
func taskCells(t Task) []any {
	return []any{
		t.RR,
		t.ProductName,
		t.Role,
		t.Milestone,
		t.Region,
		t.Skills,
		t.AssignmentTasks,
		t.HoursPerRolePerMilestone,
		t.Duration,
		t.Hours,
	}
}
