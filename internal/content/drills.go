package content

import "strings"

type Category string

const (
	CategoryShooting     Category = "shooting"
	CategoryBallHandling Category = "ball-handling"
)

type Drill struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Skill       string `json:"skill"`
	Focus       string `json:"focus"`
	Image       string `json:"image"`
}

// Provider owns the drill catalogs and is injected into the HTTP layer, so
// page and search handlers never touch package-level state.
type Provider struct {
	shooting     []Drill
	ballHandling []Drill
}

func NewProvider() *Provider {
	return &Provider{
		shooting:     shootingDrills(),
		ballHandling: ballHandlingDrills(),
	}
}

func (p *Provider) Shooting() []Drill {
	return p.shooting
}

func (p *Provider) BallHandling() []Drill {
	return p.ballHandling
}

type SearchFilter struct {
	Skill   string `json:"skill"`
	Focus   string `json:"focus"`
	Keyword string `json:"keyword"`
}

// Search filters one category's catalog. Empty filter fields match everything;
// the keyword matches case-insensitively against title and description.
func (p *Provider) Search(category Category, filter SearchFilter) []Drill {
	var catalog []Drill
	switch category {
	case CategoryShooting:
		catalog = p.shooting
	case CategoryBallHandling:
		catalog = p.ballHandling
	default:
		return []Drill{}
	}

	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))

	matches := make([]Drill, 0, len(catalog))
	for _, drill := range catalog {
		if filter.Skill != "" && drill.Skill != filter.Skill {
			continue
		}
		if filter.Focus != "" && drill.Focus != filter.Focus {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(drill.Title), keyword) &&
			!strings.Contains(strings.ToLower(drill.Description), keyword) {
			continue
		}
		matches = append(matches, drill)
	}
	return matches
}

func shootingDrills() []Drill {
	return []Drill{
		{
			ID:          "wall-shooting",
			Title:       "Wall Shooting Drill",
			Description: "Isolate your shooting form by shooting close to a wall. Great for building muscle memory and consistency.",
			Skill:       "Beginner",
			Focus:       "Form",
			Image:       "static/images/wall-shooting.jpg",
		},
		{
			ID:          "one-hand-shooting",
			Title:       "1-Hand Shooting Drill",
			Description: "Practice with your shooting hand only to refine wrist action and follow-through.",
			Skill:       "Beginner",
			Focus:       "Form",
			Image:       "static/images/one-hand-shooting.jpg",
		},
		{
			ID:          "elbow-shooting",
			Title:       "Elbow Shooting Drill",
			Description: "Repetitive shots from the elbow to reinforce mid-range accuracy.",
			Skill:       "Intermediate",
			Focus:       "Form",
			Image:       "static/images/elbow-shooting.jpg",
		},
		{
			ID:          "catch-shoot",
			Title:       "Pass, Catch & Shoot Drill",
			Description: "Partner passes ball; shooter catches and fires immediately.",
			Skill:       "Intermediate",
			Focus:       "Catch & Shoot",
			Image:       "static/images/catch-shoot.jpg",
		},
		{
			ID:          "step-back",
			Title:       "Step-Back Shooting Drill",
			Description: "Create space with a step-back and shoot.",
			Skill:       "Advanced",
			Focus:       "Off Dribble",
			Image:       "static/images/step-back.jpg",
		},
	}
}

func ballHandlingDrills() []Drill {
	return []Drill{
		{
			ID:          "figure-8-dribble",
			Title:       "Figure 8 Dribble",
			Description: "Dribble the ball in a figure 8 pattern around and between your legs. Builds hand speed and coordination.",
			Skill:       "Beginner",
			Focus:       "Control & Coordination",
			Image:       "static/images/figure-8-dribble.jpg",
		},
		{
			ID:          "cone-crossover",
			Title:       "Cone Crossover Drill",
			Description: "Dribble toward each cone and perform a crossover move to switch hands. Simulates defender pressure.",
			Skill:       "Intermediate",
			Focus:       "Change of Direction",
			Image:       "static/images/cone-crossover.jpg",
		},
		{
			ID:          "spider-dribble",
			Title:       "Spider Dribble",
			Description: "Dribble rapidly in front and behind you using alternating hands. Builds rapid hand coordination.",
			Skill:       "Intermediate",
			Focus:       "Hand Speed & Ambidexterity",
			Image:       "static/images/spider-dribble.jpg",
		},
		{
			ID:          "two-ball-dribble",
			Title:       "Stationary Two-Ball Dribble",
			Description: "Dribble both balls simultaneously at medium height. Builds symmetrical control and focus.",
			Skill:       "Advanced",
			Focus:       "Ambidexterity & Focus",
			Image:       "static/images/two-ball-dribble.jpg",
		},
		{
			ID:          "z-pattern-dribble",
			Title:       "Z-Pattern Speed Dribble",
			Description: "Sprint while dribbling, changing direction at each cone. Simulates game-like directional shifts.",
			Skill:       "Advanced",
			Focus:       "Speed & Directional Control",
			Image:       "static/images/z-pattern-dribble.jpg",
		},
	}
}
