package domain

import (
	"math"
	"strings"
)

// CategoryCode is the short code keying a quest category.
type CategoryCode string

const (
	CategoryWork     CategoryCode = "work"
	CategoryHealth   CategoryCode = "health"
	CategoryPersonal CategoryCode = "personal"
	CategoryLearning CategoryCode = "learning"
	CategoryCreative CategoryCode = "creative"
	CategoryFinance  CategoryCode = "finance"
)

// CreatableCategories is the allow-list accepted by quest creation. It is
// narrower than the browsable catalog: finance exists as a category but is
// not creatable, a documented inconsistency carried over deliberately.
var CreatableCategories = []CategoryCode{
	CategoryWork, CategoryHealth, CategoryPersonal, CategoryLearning, CategoryCreative,
}

// ParseCreatableCategory normalizes and validates a category string against
// the creation allow-list.
func ParseCreatableCategory(s string) (CategoryCode, bool) {
	c := CategoryCode(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range CreatableCategories {
		if c == valid {
			return c, true
		}
	}
	return "", false
}

// DifficultyDistribution is the advisory easy/medium/hard share per category.
// The percentages are meant to sum to 100 but this is not enforced.
type DifficultyDistribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Category is a static reference entity. Immutable at runtime.
type Category struct {
	ID                     CategoryCode           `json:"id"`
	Name                   string                 `json:"name"`
	Description            string                 `json:"description"`
	Color                  string                 `json:"color"`
	Icon                   string                 `json:"icon"`
	Emoji                  string                 `json:"emoji"`
	DefaultXPMultiplier    float64                `json:"default_xp_multiplier"`
	CommonPriorities       []Priority             `json:"common_priorities"`
	SuggestedTimeBlocks    []int                  `json:"suggested_time_blocks"`
	PopularTags            []string               `json:"popular_tags"`
	DifficultyDistribution DifficultyDistribution `json:"difficulty_distribution"`
	Tips                   []string               `json:"tips"`
}

// MatchesSearch reports whether the term appears in the category name,
// description, or popular tags, case-insensitively.
func (c *Category) MatchesSearch(term string) bool {
	if c == nil {
		return false
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(c.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Description), term) {
		return true
	}
	for _, tag := range c.PopularTags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// RecommendedFor labels the audiences a category suits.
func (c *Category) RecommendedFor() []string {
	var recs []string
	if c.DifficultyDistribution.Easy >= 50 {
		recs = append(recs, "Beginners")
	}
	if c.DefaultXPMultiplier > 1.2 {
		recs = append(recs, "XP Hunters")
	}
	if len(c.SuggestedTimeBlocks) > 0 && c.SuggestedTimeBlocks[0] <= 20 {
		recs = append(recs, "Busy Schedules")
	}
	if c.ID == CategoryHealth || c.ID == CategoryPersonal {
		recs = append(recs, "Work-Life Balance")
	}
	if c.ID == CategoryLearning || c.ID == CategoryCreative {
		recs = append(recs, "Skill Development")
	}
	if len(recs) == 0 {
		recs = []string{"Everyone"}
	}
	return recs
}

// CategoryStats is a frozen usage snapshot keyed by category code. It is
// seeded at startup and never recomputed from the live quest collection.
type CategoryStats struct {
	TotalQuests           int `json:"total_quests"`
	Completed             int `json:"completed"`
	AverageCompletionTime int `json:"avg_completion_time"`
	ActiveUsers           int `json:"active_users"`
}

// CompletionRate is the completed share of the snapshot, in whole percent.
func (s CategoryStats) CompletionRate() int {
	if s.TotalQuests == 0 {
		return 0
	}
	return int(math.Round(float64(s.Completed) / float64(s.TotalQuests) * 100))
}

// TrendingScore is a weighted composite of the snapshot: up to 50 points for
// active users (saturating at 50), 30 for completion rate, 20 for quest
// volume (saturating at 20).
func (s CategoryStats) TrendingScore() int {
	userScore := math.Min(float64(s.ActiveUsers)/50, 1) * 50
	completionScore := 0.0
	if s.TotalQuests > 0 {
		completionScore = float64(s.Completed) / float64(s.TotalQuests) * 30
	}
	volumeScore := math.Min(float64(s.TotalQuests)/20, 1) * 20
	return int(math.Round(userScore + completionScore + volumeScore))
}

// TrendingLabel buckets the snapshot into high, medium, or low by active users.
func (s CategoryStats) TrendingLabel() string {
	switch {
	case s.ActiveUsers > 30:
		return "high"
	case s.ActiveUsers > 20:
		return "medium"
	default:
		return "low"
	}
}

// QuestTemplate is a canned quest shape used for sample quests and
// generated suggestions.
type QuestTemplate struct {
	Title       string
	Description string
	Minutes     int
	Difficulty  Difficulty
}

// TemplateXP prices a template against the category multiplier.
func (c *Category) TemplateXP(minutes int) int {
	return int(math.Round(float64(minutes) * c.DefaultXPMultiplier))
}

var sampleQuestTemplates = map[CategoryCode][]QuestTemplate{
	CategoryWork: {
		{Title: "Review project documentation", Minutes: 30, Difficulty: DifficultyEasy},
		{Title: "Attend team standup meeting", Minutes: 15, Difficulty: DifficultyEasy},
		{Title: "Complete code review", Minutes: 45, Difficulty: DifficultyMedium},
	},
	CategoryHealth: {
		{Title: "20-minute morning walk", Minutes: 20, Difficulty: DifficultyEasy},
		{Title: "Prepare healthy lunch", Minutes: 30, Difficulty: DifficultyEasy},
		{Title: "45-minute workout session", Minutes: 45, Difficulty: DifficultyMedium},
	},
	CategoryPersonal: {
		{Title: "Call a family member", Minutes: 15, Difficulty: DifficultyEasy},
		{Title: "Organize desk workspace", Minutes: 30, Difficulty: DifficultyEasy},
		{Title: "Plan weekend activities", Minutes: 20, Difficulty: DifficultyEasy},
	},
	CategoryLearning: {
		{Title: "Read one chapter of programming book", Minutes: 60, Difficulty: DifficultyMedium},
		{Title: "Complete online course module", Minutes: 45, Difficulty: DifficultyMedium},
		{Title: "Practice coding exercises", Minutes: 30, Difficulty: DifficultyEasy},
	},
	CategoryCreative: {
		{Title: "Write in journal for 15 minutes", Minutes: 15, Difficulty: DifficultyEasy},
		{Title: "Sketch or draw for 30 minutes", Minutes: 30, Difficulty: DifficultyEasy},
		{Title: "Work on creative project", Minutes: 60, Difficulty: DifficultyMedium},
	},
	CategoryFinance: {
		{Title: "Review monthly budget", Minutes: 30, Difficulty: DifficultyEasy},
		{Title: "Research investment options", Minutes: 45, Difficulty: DifficultyMedium},
		{Title: "Update expense tracking", Minutes: 20, Difficulty: DifficultyEasy},
	},
}

// SampleQuestTemplates returns the canned quest shapes for the category.
func (c *Category) SampleQuestTemplates() []QuestTemplate {
	return sampleQuestTemplates[c.ID]
}

// SuggestionTemplates generates the parameterized suggestion shapes for the
// category, before difficulty and time filtering.
func (c *Category) SuggestionTemplates() []QuestTemplate {
	lower := strings.ToLower(c.Name)
	return []QuestTemplate{
		{
			Title:       "Review " + lower + " goals",
			Description: "Take time to review and adjust your " + lower + " objectives",
			Minutes:     20,
			Difficulty:  DifficultyEasy,
		},
		{
			Title:       "Complete a " + lower + " task",
			Description: "Work on an important task in the " + lower + " category",
			Minutes:     30,
			Difficulty:  DifficultyMedium,
		},
		{
			Title:       "Plan " + lower + " activities",
			Description: "Plan upcoming activities and priorities for " + lower,
			Minutes:     15,
			Difficulty:  DifficultyEasy,
		},
	}
}

// GettingStartedGuide is the three-step onboarding block per category.
type GettingStartedGuide struct {
	Step1 string `json:"step1"`
	Step2 string `json:"step2"`
	Step3 string `json:"step3"`
}

var gettingStartedGuides = map[CategoryCode]GettingStartedGuide{
	CategoryWork: {
		Step1: "Start by listing your current work priorities",
		Step2: "Break large projects into smaller, manageable tasks",
		Step3: "Set realistic deadlines and track your progress",
	},
	CategoryHealth: {
		Step1: "Choose one small health habit to focus on",
		Step2: "Schedule it at a consistent time each day",
		Step3: "Track your progress and celebrate small wins",
	},
	CategoryPersonal: {
		Step1: "Identify what personal areas need attention",
		Step2: "Start with quick, easy wins to build momentum",
		Step3: "Schedule personal time like any other important appointment",
	},
	CategoryLearning: {
		Step1: "Choose a specific skill or topic to focus on",
		Step2: "Set aside dedicated learning time each day",
		Step3: "Apply what you learn through practice or projects",
	},
	CategoryCreative: {
		Step1: "Set aside regular time for creative exploration",
		Step2: "Start with small, low-pressure creative exercises",
		Step3: "Share your work to get feedback and stay motivated",
	},
	CategoryFinance: {
		Step1: "Start by tracking your current spending for one week",
		Step2: "Set one specific financial goal to work towards",
		Step3: "Automate one financial habit (savings, bill payment, etc.)",
	},
}

// GettingStarted returns the onboarding guide for the category, with a
// generic fallback for unknown codes.
func (c *Category) GettingStarted() GettingStartedGuide {
	if guide, ok := gettingStartedGuides[c.ID]; ok {
		return guide
	}
	return GettingStartedGuide{
		Step1: "Identify what you want to achieve in this category",
		Step2: "Start with small, achievable goals",
		Step3: "Track your progress and adjust as needed",
	}
}
