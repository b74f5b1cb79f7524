package requests

// WeekQuery carries the reference date selecting the displayed week.
// An empty date means "this week".
type WeekQuery struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
