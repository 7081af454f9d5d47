package domain

import "time"

// MealSlot defines which meal of the day an entry plans
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
)

// Meal represents one planned meal on the family meal calendar
type Meal struct {
	ID         string
	Name       string
	Slot       MealSlot
	AssignedTo string // Profile ID of the cook
	Date       time.Time
	Notes      string
}

// OnDay returns true if the meal is planned for the given calendar date
func (m *Meal) OnDay(day time.Time) bool {
	return m.Date.Year() == day.Year() && m.Date.YearDay() == day.YearDay()
}
