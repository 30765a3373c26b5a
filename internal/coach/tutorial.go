package coach

// TutorialStep is one page of the introduction.
type TutorialStep struct {
	Title   string
	Content string
	Example *TutorialExample
}

// TutorialExample contrasts two items on a tutorial page.
type TutorialExample struct {
	First       string
	Second      string
	Explanation string
}

var tutorialSteps = []TutorialStep{
	{
		Title:   "Welcome to Feed Rank!",
		Content: "Learn how ranking algorithms work by comparing simple percentages with statistical confidence. You will see why the Wilson score beats sorting by percentage.",
	},
	{
		Title:   "How Most Sites Rank Content",
		Content: "Most sites use simple percentages: upvotes / total votes. A post with 19 of 20 positive votes (95%) would rank above one with 178 of 200 (89%).",
		Example: &TutorialExample{
			First:       "Post A: 19 up, 1 down = 95%",
			Second:      "Post B: 178 up, 22 down = 89%",
			Explanation: "By percentage alone, Post A ranks higher. But is that reliable?",
		},
	},
	{
		Title:   "The Problem",
		Content: "Which rating is more trustworthy: 95% from 20 votes, or 89% from 200 votes? Small samples can be misleading.",
		Example: &TutorialExample{
			First:       "95% with 20 votes",
			Second:      "89% with 200 votes",
			Explanation: "The second post has ten times more data. Its rating is more reliable.",
		},
	},
	{
		Title:   "Wilson Score Solution",
		Content: "The Wilson score asks how confident we can be that a rating is real. More votes mean more confidence.",
		Example: &TutorialExample{
			First:       "Small sample = high uncertainty",
			Second:      "Large sample = low uncertainty",
			Explanation: "Wilson ranks by the pessimistic end of the interval, so uncertain posts drop.",
		},
	},
	{
		Title:   "Your Challenge",
		Content: "Each round shows a few posts with vote counts. Move them into order from best (top) to worst (bottom) and see if you can match the Wilson score.",
	},
}

// Tutorial returns the introduction pages in order.
func Tutorial() []TutorialStep {
	out := make([]TutorialStep, len(tutorialSteps))
	copy(out, tutorialSteps)
	return out
}
