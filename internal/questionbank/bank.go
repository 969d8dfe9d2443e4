package questionbank

import "career-quiz-service/internal/models"

// Age range tags supported by the service.
const (
	AgeRange6to8   = "6-8"
	AgeRange9to12  = "9-12"
	AgeRange13to17 = "13-17"
)

// careerAreas maps each age range to its career-area list. Order matters:
// the scoring engine breaks ties by declaration order.
var careerAreas = map[string][]string{
	AgeRange6to8:   {"Art", "Science", "Sports", "Music", "Nature", "Helping Others"},
	AgeRange9to12:  {"Technology", "Art", "Science", "Sports", "Writing", "Leadership"},
	AgeRange13to17: {"Engineering", "Medicine", "Arts & Design", "Business", "Technology", "Education"},
}

// Supported reports whether the age range has a configured question set.
func Supported(ageRange string) bool {
	_, ok := careerAreas[ageRange]
	return ok
}

// AgeRanges returns the supported age range tags in ascending order.
func AgeRanges() []string {
	return []string{AgeRange6to8, AgeRange9to12, AgeRange13to17}
}

// CareerAreasFor returns the career areas tracked for an age range, in
// declaration order, or nil for an unsupported range.
func CareerAreasFor(ageRange string) []string {
	areas, ok := careerAreas[ageRange]
	if !ok {
		return nil
	}
	out := make([]string, len(areas))
	copy(out, areas)
	return out
}

// QuestionsFor returns a copy of the question set for an age range, or nil
// for an unsupported range. The scoring matrices are shared, not copied;
// callers must treat them as read-only.
func QuestionsFor(ageRange string) []models.Question {
	qs, ok := questions[ageRange]
	if !ok {
		return nil
	}
	out := make([]models.Question, len(qs))
	copy(out, qs)
	return out
}

var questions = map[string][]models.Question{
	AgeRange6to8: {
		{
			Text:    "What do you like to do most after school?",
			Options: []string{"Draw or paint pictures", "Look at bugs and plants", "Run and play outside", "Sing or play an instrument"},
			Scoring: map[string][]int{
				"Art":     {3, 0, 0, 1},
				"Science": {0, 3, 0, 0},
				"Sports":  {0, 1, 3, 0},
				"Music":   {1, 0, 0, 3},
				"Nature":  {0, 2, 1, 0},
			},
		},
		{
			Text:    "Which classroom job would you pick?",
			Options: []string{"Decorating the bulletin board", "Feeding the class pet", "Leading the stretch break", "Helping a friend who is sad"},
			Scoring: map[string][]int{
				"Art":            {3, 0, 0, 0},
				"Nature":         {0, 3, 0, 0},
				"Sports":         {0, 0, 3, 0},
				"Helping Others": {0, 1, 0, 3},
			},
		},
		{
			Text:    "What would you build with blocks?",
			Options: []string{"A rainbow castle", "A machine that moves", "A big stadium", "A stage for a show"},
			Scoring: map[string][]int{
				"Art":     {3, 1, 0, 1},
				"Science": {0, 3, 0, 0},
				"Sports":  {0, 0, 3, 0},
				"Music":   {0, 0, 0, 3},
			},
		},
		{
			Text:    "Which story sounds the most fun?",
			Options: []string{"A trip to a museum of paintings", "A journey to outer space", "A day at the big game", "A walk through a forest"},
			Scoring: map[string][]int{
				"Art":     {3, 0, 0, 0},
				"Science": {0, 3, 0, 1},
				"Sports":  {0, 0, 3, 0},
				"Nature":  {0, 1, 0, 3},
			},
		},
		{
			Text:    "What makes you happiest?",
			Options: []string{"Making something pretty", "Figuring out how things work", "Winning a race", "Helping someone smile"},
			Scoring: map[string][]int{
				"Art":            {3, 0, 0, 0},
				"Science":        {0, 3, 0, 0},
				"Sports":         {0, 0, 3, 0},
				"Helping Others": {1, 0, 0, 3},
				"Music":          {1, 0, 0, 1},
			},
		},
		{
			Text:    "Which present would you want?",
			Options: []string{"A box of crayons and paper", "A magnifying glass", "A new ball", "A drum or a flute"},
			Scoring: map[string][]int{
				"Art":     {3, 0, 0, 0},
				"Science": {0, 3, 0, 0},
				"Sports":  {0, 0, 3, 0},
				"Music":   {0, 0, 0, 3},
				"Nature":  {0, 2, 1, 0},
			},
		},
	},
	AgeRange9to12: {
		{
			Text:    "Which school project would you choose?",
			Options: []string{"Build a simple website or game", "Paint a mural for the hallway", "Run a science experiment", "Write a short story"},
			Scoring: map[string][]int{
				"Technology": {3, 0, 1, 0},
				"Art":        {0, 3, 0, 1},
				"Science":    {1, 0, 3, 0},
				"Writing":    {0, 0, 0, 3},
			},
		},
		{
			Text:    "What role do you take in a group project?",
			Options: []string{"The one who organizes everyone", "The one who makes it look great", "The one who checks the facts", "The one who writes it all up"},
			Scoring: map[string][]int{
				"Leadership": {3, 0, 0, 0},
				"Art":        {0, 3, 0, 0},
				"Science":    {0, 0, 3, 0},
				"Writing":    {0, 0, 1, 3},
			},
		},
		{
			Text:    "How do you like to spend a free Saturday?",
			Options: []string{"Playing or coding on the computer", "Practicing with my team", "Reading about space or animals", "Making comics or journals"},
			Scoring: map[string][]int{
				"Technology": {3, 0, 0, 0},
				"Sports":     {0, 3, 0, 0},
				"Science":    {0, 0, 3, 0},
				"Writing":    {0, 0, 1, 3},
				"Art":        {0, 0, 0, 2},
			},
		},
		{
			Text:    "Your class is putting on a fair. What's your job?",
			Options: []string{"Setting up the computers and sound", "Designing the posters", "Running the games and races", "Being the announcer and guide"},
			Scoring: map[string][]int{
				"Technology": {3, 0, 0, 0},
				"Art":        {0, 3, 0, 0},
				"Sports":     {0, 0, 3, 0},
				"Leadership": {0, 0, 1, 3},
			},
		},
		{
			Text:    "Which would you rather learn about?",
			Options: []string{"How robots are programmed", "How volcanoes erupt", "How athletes train", "How famous authors write"},
			Scoring: map[string][]int{
				"Technology": {3, 1, 0, 0},
				"Science":    {1, 3, 0, 0},
				"Sports":     {0, 0, 3, 0},
				"Writing":    {0, 0, 0, 3},
			},
		},
		{
			Text:    "What would your friends say you're best at?",
			Options: []string{"Solving tricky puzzles", "Coming up with creative ideas", "Getting everyone to work together", "Explaining things clearly"},
			Scoring: map[string][]int{
				"Technology": {3, 0, 0, 0},
				"Science":    {2, 0, 0, 1},
				"Art":        {0, 3, 0, 0},
				"Leadership": {0, 0, 3, 0},
				"Writing":    {0, 1, 0, 3},
			},
		},
	},
	AgeRange13to17: {
		{
			Text:    "Which elective would you sign up for first?",
			Options: []string{"Robotics club", "Anatomy and health science", "Graphic design studio", "Student business incubator"},
			Scoring: map[string][]int{
				"Engineering":   {3, 0, 0, 0},
				"Medicine":      {0, 3, 0, 0},
				"Arts & Design": {0, 0, 3, 0},
				"Business":      {0, 0, 0, 3},
				"Technology":    {2, 0, 1, 1},
			},
		},
		{
			Text:    "What kind of problem do you enjoy solving?",
			Options: []string{"Why a machine isn't working", "Why someone is feeling unwell", "How to make something beautiful and usable", "How to get people to buy an idea"},
			Scoring: map[string][]int{
				"Engineering":   {3, 0, 0, 0},
				"Medicine":      {0, 3, 0, 0},
				"Arts & Design": {0, 0, 3, 0},
				"Business":      {0, 0, 0, 3},
			},
		},
		{
			Text:    "What would your ideal summer program be?",
			Options: []string{"Coding bootcamp", "Hospital volunteer shadowing", "Portfolio art intensive", "Peer tutoring younger students"},
			Scoring: map[string][]int{
				"Technology":    {3, 0, 0, 0},
				"Engineering":   {2, 0, 0, 0},
				"Medicine":      {0, 3, 0, 0},
				"Arts & Design": {0, 0, 3, 0},
				"Education":     {0, 1, 0, 3},
			},
		},
		{
			Text:    "Which headline would you click first?",
			Options: []string{"New bridge design breaks records", "Breakthrough treatment announced", "Student startup lands funding", "Teachers reinvent the classroom"},
			Scoring: map[string][]int{
				"Engineering": {3, 0, 0, 0},
				"Medicine":    {0, 3, 0, 0},
				"Business":    {0, 0, 3, 0},
				"Education":   {0, 0, 0, 3},
				"Technology":  {1, 1, 1, 0},
			},
		},
		{
			Text:    "In a team, what do people count on you for?",
			Options: []string{"Making the plan actually work", "Looking out for everyone's wellbeing", "The look and feel of the final product", "Pitching it to the audience"},
			Scoring: map[string][]int{
				"Engineering":   {3, 0, 0, 0},
				"Medicine":      {0, 2, 0, 0},
				"Education":     {0, 2, 0, 1},
				"Arts & Design": {0, 0, 3, 0},
				"Business":      {0, 0, 0, 3},
			},
		},
		{
			Text:    "Ten years from now, success looks like...",
			Options: []string{"Building things people rely on", "Caring for people directly", "Creating work people connect with", "Leading a team or company"},
			Scoring: map[string][]int{
				"Engineering":   {3, 0, 0, 0},
				"Technology":    {2, 0, 0, 1},
				"Medicine":      {0, 3, 0, 0},
				"Education":     {0, 1, 1, 0},
				"Arts & Design": {0, 0, 3, 0},
				"Business":      {0, 0, 0, 3},
			},
		},
	},
}
