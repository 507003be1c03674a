package catalog

import "example.com/enrollment/internal/domain"

// DefaultSeed returns the fixed catalog the service starts with. Treated as
// configuration data; the catalog never gains or loses activities at runtime.
func DefaultSeed() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team and training",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis skills and participate in friendly matches",
			Schedule:        "Wednesdays and Saturdays, 3:00 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"sarah@mergington.edu", "james@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Music Ensemble",
			Description:     "Join our student orchestra and perform in concerts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Debate Club",
			Description:     "Develop argumentation skills and compete in debate competitions",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"noah@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore STEM topics",
			Schedule:        "Mondays and Fridays, 3:45 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
	}
}
