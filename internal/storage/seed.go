package storage

import (
	"time"

	"github.com/tazhate/familyhub/internal/domain"
)

// SeedDemo fills an empty store with a sample family so the demo binary has
// something to show. The first profile becomes the active one.
func SeedDemo(s *Storage) {
	mom := s.AddProfile(domain.Profile{Name: "Mom", Avatar: "👩", Color: domain.ColorBlue, Role: domain.RoleParent})
	dad := s.AddProfile(domain.Profile{Name: "Dad", Avatar: "👨", Color: domain.ColorGreen, Role: domain.RoleParent})
	sarah := s.AddProfile(domain.Profile{Name: "Sarah", Avatar: "👧", Color: domain.ColorPurple, Role: domain.RoleChild})
	jack := s.AddProfile(domain.Profile{Name: "Jack", Avatar: "👦", Color: domain.ColorOrange, Role: domain.RoleChild})
	s.SetActiveProfile(mom)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	s.AddEvent(domain.Event{
		Title:     "Soccer Practice",
		Start:     today.Add(15 * time.Hour),
		End:       today.Add(16*time.Hour + 30*time.Minute),
		ProfileID: sarah.ID,
		Location:  "City Sports Complex",
		Recurring: domain.RecurWeekly,
	})
	s.AddEvent(domain.Event{
		Title:     "Dentist Appointment",
		Start:     tomorrow.Add(10 * time.Hour),
		End:       tomorrow.Add(11 * time.Hour),
		ProfileID: jack.ID,
		Location:  "Dr. Smith's Office",
	})
	s.AddEvent(domain.Event{
		Title:     "Family Dinner",
		Start:     today.Add(18*time.Hour + 30*time.Minute),
		End:       today.Add(20 * time.Hour),
		ProfileID: mom.ID,
		Location:  "Home",
	})

	s.AddTask(domain.Task{
		Title:       "Take out the trash",
		Description: "Don't forget the recycling too!",
		DueDate:     &today,
		AssignedTo:  jack.ID,
		CreatedBy:   mom.ID,
		Points:      5,
	})
	s.AddTask(domain.Task{
		Title:       "Homework",
		Description: "Math and Science",
		DueDate:     &tomorrow,
		AssignedTo:  sarah.ID,
		CreatedBy:   dad.ID,
		Points:      10,
	})
	s.AddTask(domain.Task{
		Title:      "Clean bedroom",
		DueDate:    &today,
		Completed:  true,
		AssignedTo: sarah.ID,
		CreatedBy:  mom.ID,
		Points:     15,
	})

	s.AddMessage(domain.Message{
		Content:        "Pizza night this Friday! 🍕",
		SenderID:       mom.ID,
		IsAnnouncement: true,
	})
	s.AddMessage(domain.Message{
		Content:  "I'll pick up the kids from school today",
		SenderID: dad.ID,
	})

	s.AddPoll(domain.Poll{
		Question: "What should we have for dinner on Saturday?",
		Options: []domain.PollOption{
			{Text: "Pizza"},
			{Text: "Tacos"},
			{Text: "Pasta"},
		},
		CreatedBy: mom.ID,
	})

	s.AddMeal(domain.Meal{
		Name:       "Pancakes with Berries",
		Slot:       domain.MealBreakfast,
		AssignedTo: mom.ID,
		Date:       today,
		Notes:      "Use whole wheat flour",
	})
	s.AddMeal(domain.Meal{
		Name:       "Chicken Caesar Salad",
		Slot:       domain.MealLunch,
		AssignedTo: dad.ID,
		Date:       today,
		Notes:      "Get pre-cooked chicken to save time",
	})
}
