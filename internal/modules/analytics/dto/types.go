package dto

type SubjectTotalOutput struct {
	Subject      string
	TotalMinutes int
}

type WeeklyOutput struct {
	StartDate    string
	EndDate      string
	Totals       []SubjectTotalOutput
	TotalMinutes int
	Completed    int
	Sessions     int
}
