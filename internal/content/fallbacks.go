package content

import (
	"career-quiz-service/internal/models"
	"career-quiz-service/internal/questionbank"
)

// Static fallback sets served when a category's generation fails. Books and
// resources are age-range aware; games are generic.

func fallbackGames() []models.GameItem {
	return []models.GameItem{
		{Title: "Pattern Detective", Description: "Spot and extend patterns with cards or household objects.", Skill: "Logic", Type: "card", Category: "game"},
		{Title: "Story Builders", Description: "Take turns adding one sentence to build a wild story together.", Skill: "Creativity", Type: "outdoor", Category: "game"},
		{Title: "Twenty Questions: Jobs Edition", Description: "Guess the secret job by asking yes-or-no questions.", Skill: "Curiosity", Type: "card", Category: "game"},
		{Title: "Build-It Challenge", Description: "Build the tallest tower you can from paper and tape in ten minutes.", Skill: "Engineering", Type: "board", Category: "game"},
	}
}

func fallbackBooks(ageRange string) []models.BookItem {
	switch ageRange {
	case questionbank.AgeRange6to8:
		return []models.BookItem{
			{Title: "Ada Twist, Scientist", Author: "Andrea Beaty", Description: "A curious girl asks why about everything around her.", AgeRange: ageRange, Category: "book"},
			{Title: "The Dot", Author: "Peter H. Reynolds", Description: "A small mark becomes the start of a creative journey.", AgeRange: ageRange, Category: "book"},
			{Title: "Iggy Peck, Architect", Author: "Andrea Beaty", Description: "A young builder proves that passion finds a way.", AgeRange: ageRange, Category: "book"},
		}
	case questionbank.AgeRange13to17:
		return []models.BookItem{
			{Title: "The Boy Who Harnessed the Wind", Author: "William Kamkwamba", Description: "A teenager builds a windmill from scraps to power his village.", AgeRange: ageRange, Category: "book"},
			{Title: "Hidden Figures (Young Readers' Edition)", Author: "Margot Lee Shetterly", Description: "The mathematicians who helped launch the space race.", AgeRange: ageRange, Category: "book"},
			{Title: "Steve Jobs: The Man Who Thought Different", Author: "Karen Blumenthal", Description: "How design and technology shaped a career.", AgeRange: ageRange, Category: "book"},
		}
	default:
		return []models.BookItem{
			{Title: "The Wild Robot", Author: "Peter Brown", Description: "A robot learns to survive and belong on a wild island.", AgeRange: questionbank.AgeRange9to12, Category: "book"},
			{Title: "What Do You Do With an Idea?", Author: "Kobi Yamada", Description: "Following an idea wherever it leads.", AgeRange: questionbank.AgeRange9to12, Category: "book"},
			{Title: "Women in Science", Author: "Rachel Ignotofsky", Description: "Fifty fearless pioneers who changed the world.", AgeRange: questionbank.AgeRange9to12, Category: "book"},
		}
	}
}

func fallbackResources(ageRange string) []models.ResourceItem {
	switch ageRange {
	case questionbank.AgeRange6to8:
		return []models.ResourceItem{
			{Title: "PBS Kids", Type: "website", Description: "Games and videos across science, art, and reading.", SkillLevel: "beginner", EstimatedTime: "20 minutes", Category: "resource"},
			{Title: "Local library story hour", Type: "class", Description: "Weekly read-alouds and craft sessions.", SkillLevel: "beginner", EstimatedTime: "1 hour", Category: "resource"},
			{Title: "Nature scavenger hunt kit", Type: "kit", Description: "A printable checklist for exploring the backyard.", SkillLevel: "beginner", EstimatedTime: "45 minutes", Category: "resource"},
		}
	case questionbank.AgeRange13to17:
		return []models.ResourceItem{
			{Title: "Khan Academy", Type: "website", Description: "Free courses from algebra to art history.", SkillLevel: "intermediate", EstimatedTime: "self-paced", Category: "resource"},
			{Title: "freeCodeCamp", Type: "website", Description: "Hands-on programming curriculum with projects.", SkillLevel: "beginner", EstimatedTime: "self-paced", Category: "resource"},
			{Title: "Local volunteering programs", Type: "class", Description: "Real-world experience in health, education, or community work.", SkillLevel: "beginner", EstimatedTime: "2-4 hours weekly", Category: "resource"},
		}
	default:
		return []models.ResourceItem{
			{Title: "Scratch", Type: "website", Description: "Create games and animations with block coding.", SkillLevel: "beginner", EstimatedTime: "30 minutes", Category: "resource"},
			{Title: "NASA Kids' Club", Type: "website", Description: "Space games, facts, and experiments.", SkillLevel: "beginner", EstimatedTime: "30 minutes", Category: "resource"},
			{Title: "DIY science experiment kit", Type: "kit", Description: "Safe kitchen-chemistry experiments with instructions.", SkillLevel: "beginner", EstimatedTime: "1 hour", Category: "resource"},
		}
	}
}
