package services

// TotalDuration is the Duration value that marks a section's summary line.
const TotalDuration = "Total"

// Task is one work-item row of a tasklist.
type Task struct {
	RR                       string `json:"rr"`
	ProductName              string `json:"product_name"`
	Role                     string `json:"role"`
	Milestone                string `json:"milestone"`
	Region                   string `json:"region"`
	Skills                   string `json:"skills"`
	AssignmentTasks          string `json:"assignment_tasks"`
	HoursPerRolePerMilestone string `json:"hours_per_role_per_milestone"`
	Duration                 string `json:"duration"`
	Hours                    int64  `json:"hours"`
}

// Section is an ordered list of tasks. Row order in the output follows
// slice order.
type Section []Task

// IsTotal reports whether the task is a section's Total line.
func (t Task) IsTotal() bool {
	return t.Duration == TotalDuration
}
