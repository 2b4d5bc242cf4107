package itembank

func init() {
	b, err := New(seedItems)
	if err != nil {
		panic(err)
	}
	bank = b
}

// seedItems is the built-in 93-item instrument: 21 E-I, 26 S-N,
// 24 T-F, 22 J-P. The a/b constants are the calibration for this
// version of the instrument; changing any value changes results, so
// treat the table as versioned configuration. Items are grouped by
// dichotomy here for maintainability; respondents see them in id
// order (question N on screen is item N-1).
var seedItems = []Item{
	// E-I (21 items, ids 0-20). Positive pole: E.
	{ID: 0, Dichotomy: DichotomyEI, A: 1.32, B: -0.41,
		Stem:    "At a party, do you:",
		OptionA: Option{Key: "A", Text: "Talk with many people, including strangers", Positive: true},
		OptionB: Option{Key: "B", Text: "Stay with the few people you already know"},
	},
	{ID: 1, Dichotomy: DichotomyEI, A: 1.05, B: 0.22,
		Stem:    "When the phone rings, do you:",
		OptionA: Option{Key: "A", Text: "Hope someone else will answer it"},
		OptionB: Option{Key: "B", Text: "Hurry to get to it first", Positive: true},
	},
	{ID: 2, Dichotomy: DichotomyEI, A: 1.48, B: -0.13,
		Stem:    "Do you usually:",
		OptionA: Option{Key: "A", Text: "Mix easily with new people", Positive: true},
		OptionB: Option{Key: "B", Text: "Keep more to yourself until you know people well"},
	},
	{ID: 3, Dichotomy: DichotomyEI, A: 0.87, B: 0.64,
		Stem:    "After a long week, do you recharge by:",
		OptionA: Option{Key: "A", Text: "Going out and doing something with friends", Positive: true},
		OptionB: Option{Key: "B", Text: "Spending quiet time on your own"},
	},
	{ID: 4, Dichotomy: DichotomyEI, A: 1.21, B: -0.72,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Lively", Positive: true},
		OptionB: Option{Key: "B", Text: "Calm"},
	},
	{ID: 5, Dichotomy: DichotomyEI, A: 1.14, B: 0.08,
		Stem:    "In a group discussion, do you more often:",
		OptionA: Option{Key: "A", Text: "Speak up readily and think out loud", Positive: true},
		OptionB: Option{Key: "B", Text: "Listen and speak when you have something worked out"},
	},
	{ID: 6, Dichotomy: DichotomyEI, A: 0.94, B: -1.05,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Reserved"},
		OptionB: Option{Key: "B", Text: "Talkative", Positive: true},
	},
	{ID: 7, Dichotomy: DichotomyEI, A: 1.37, B: 0.35,
		Stem:    "When you meet someone new, do you:",
		OptionA: Option{Key: "A", Text: "Find plenty to say right away", Positive: true},
		OptionB: Option{Key: "B", Text: "Wait for the other person to open the conversation"},
	},
	{ID: 8, Dichotomy: DichotomyEI, A: 1.02, B: -0.28,
		Stem:    "Do long stretches of solitary work leave you:",
		OptionA: Option{Key: "A", Text: "Restless for company", Positive: true},
		OptionB: Option{Key: "B", Text: "Content and absorbed"},
	},
	{ID: 9, Dichotomy: DichotomyEI, A: 1.26, B: 0.51,
		Stem:    "Would people who know you describe you as:",
		OptionA: Option{Key: "A", Text: "Easy to get to know", Positive: true},
		OptionB: Option{Key: "B", Text: "Hard to get to know"},
	},
	{ID: 10, Dichotomy: DichotomyEI, A: 0.78, B: -0.9,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Private"},
		OptionB: Option{Key: "B", Text: "Sociable", Positive: true},
	},
	{ID: 11, Dichotomy: DichotomyEI, A: 1.19, B: 0.14,
		Stem:    "When something notable happens to you, do you:",
		OptionA: Option{Key: "A", Text: "Want to tell someone about it soon", Positive: true},
		OptionB: Option{Key: "B", Text: "Turn it over privately before mentioning it"},
	},
	{ID: 12, Dichotomy: DichotomyEI, A: 1.41, B: -0.55,
		Stem:    "Do large gatherings:",
		OptionA: Option{Key: "A", Text: "Give you energy", Positive: true},
		OptionB: Option{Key: "B", Text: "Wear you out"},
	},
	{ID: 13, Dichotomy: DichotomyEI, A: 0.91, B: 0.77,
		Stem:    "When working on a problem, do you prefer to:",
		OptionA: Option{Key: "A", Text: "Talk it through with others", Positive: true},
		OptionB: Option{Key: "B", Text: "Work it out alone first"},
	},
	{ID: 14, Dichotomy: DichotomyEI, A: 1.08, B: -0.19,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Outgoing", Positive: true},
		OptionB: Option{Key: "B", Text: "Reflective"},
	},
	{ID: 15, Dichotomy: DichotomyEI, A: 1.24, B: 0.42,
		Stem:    "In a new group, do you usually:",
		OptionA: Option{Key: "A", Text: "Join in the conversation early", Positive: true},
		OptionB: Option{Key: "B", Text: "Get a feel for the group before joining in"},
	},
	{ID: 16, Dichotomy: DichotomyEI, A: 0.83, B: -0.66,
		Stem:    "Do you tend to have:",
		OptionA: Option{Key: "A", Text: "A broad circle of friends and acquaintances", Positive: true},
		OptionB: Option{Key: "B", Text: "A few deep, long-standing friendships"},
	},
	{ID: 17, Dichotomy: DichotomyEI, A: 1.3, B: 0.03,
		Stem:    "Is it more natural for you to:",
		OptionA: Option{Key: "A", Text: "Act first and reflect afterwards", Positive: true},
		OptionB: Option{Key: "B", Text: "Reflect first and act afterwards"},
	},
	{ID: 18, Dichotomy: DichotomyEI, A: 0.97, B: -1.21,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Quiet"},
		OptionB: Option{Key: "B", Text: "Animated", Positive: true},
	},
	{ID: 19, Dichotomy: DichotomyEI, A: 1.12, B: 0.58,
		Stem:    "At work, do you prefer a day of:",
		OptionA: Option{Key: "A", Text: "Meetings, calls, and people", Positive: true},
		OptionB: Option{Key: "B", Text: "Uninterrupted time at your desk"},
	},
	{ID: 20, Dichotomy: DichotomyEI, A: 1.35, B: -0.34,
		Stem:    "When you are the newcomer, introductions are:",
		OptionA: Option{Key: "A", Text: "Something you enjoy making yourself", Positive: true},
		OptionB: Option{Key: "B", Text: "Something you would rather someone else handled"},
	},

	// S-N (26 items, ids 21-46). Positive pole: S.
	{ID: 21, Dichotomy: DichotomySN, A: 1.18, B: -0.22,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Facts", Positive: true},
		OptionB: Option{Key: "B", Text: "Ideas"},
	},
	{ID: 22, Dichotomy: DichotomySN, A: 1.33, B: 0.17,
		Stem:    "Are you more drawn to:",
		OptionA: Option{Key: "A", Text: "What is actual and present", Positive: true},
		OptionB: Option{Key: "B", Text: "What is possible and imagined"},
	},
	{ID: 23, Dichotomy: DichotomySN, A: 0.89, B: -0.73,
		Stem:    "When you read, do you prefer writers who:",
		OptionA: Option{Key: "A", Text: "Say exactly what they mean", Positive: true},
		OptionB: Option{Key: "B", Text: "Use metaphor and suggestion"},
	},
	{ID: 24, Dichotomy: DichotomySN, A: 1.27, B: 0.44,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Imaginative"},
		OptionB: Option{Key: "B", Text: "Practical", Positive: true},
	},
	{ID: 25, Dichotomy: DichotomySN, A: 1.06, B: -0.08,
		Stem:    "Do you trust more:",
		OptionA: Option{Key: "A", Text: "Your direct experience", Positive: true},
		OptionB: Option{Key: "B", Text: "Your hunches"},
	},
	{ID: 26, Dichotomy: DichotomySN, A: 1.44, B: 0.29,
		Stem:    "When learning something new, do you prefer:",
		OptionA: Option{Key: "A", Text: "Step-by-step instructions with examples", Positive: true},
		OptionB: Option{Key: "B", Text: "The big picture, filling in details later"},
	},
	{ID: 27, Dichotomy: DichotomySN, A: 0.96, B: -1.12,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Theory"},
		OptionB: Option{Key: "B", Text: "Certainty", Positive: true},
	},
	{ID: 28, Dichotomy: DichotomySN, A: 1.15, B: 0.61,
		Stem:    "In conversation, do you more often talk about:",
		OptionA: Option{Key: "A", Text: "Events, people, and things that happened", Positive: true},
		OptionB: Option{Key: "B", Text: "Meanings, patterns, and what could happen"},
	},
	{ID: 29, Dichotomy: DichotomySN, A: 1.38, B: -0.37,
		Stem:    "Would you rather be praised as:",
		OptionA: Option{Key: "A", Text: "A person of solid common sense", Positive: true},
		OptionB: Option{Key: "B", Text: "A person of vision"},
	},
	{ID: 30, Dichotomy: DichotomySN, A: 0.81, B: 0.86,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Build", Positive: true},
		OptionB: Option{Key: "B", Text: "Invent"},
	},
	{ID: 31, Dichotomy: DichotomySN, A: 1.22, B: 0.02,
		Stem:    "Do you find routine procedures:",
		OptionA: Option{Key: "A", Text: "Reassuring and efficient", Positive: true},
		OptionB: Option{Key: "B", Text: "Confining after a while"},
	},
	{ID: 32, Dichotomy: DichotomySN, A: 1.09, B: -0.51,
		Stem:    "When describing something, do you tend to be:",
		OptionA: Option{Key: "A", Text: "Literal and exact", Positive: true},
		OptionB: Option{Key: "B", Text: "Figurative, reaching for analogies"},
	},
	{ID: 33, Dichotomy: DichotomySN, A: 1.31, B: 0.38,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Symbol"},
		OptionB: Option{Key: "B", Text: "Sign", Positive: true},
	},
	{ID: 34, Dichotomy: DichotomySN, A: 0.93, B: -0.84,
		Stem:    "Is it worse to:",
		OptionA: Option{Key: "A", Text: "Have your head in the clouds"},
		OptionB: Option{Key: "B", Text: "Be stuck in a rut", Positive: true},
	},
	{ID: 35, Dichotomy: DichotomySN, A: 1.17, B: 0.13,
		Stem:    "Do you prefer work that:",
		OptionA: Option{Key: "A", Text: "Produces something tangible", Positive: true},
		OptionB: Option{Key: "B", Text: "Explores an open question"},
	},
	{ID: 36, Dichotomy: DichotomySN, A: 1.4, B: -0.26,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Concrete", Positive: true},
		OptionB: Option{Key: "B", Text: "Abstract"},
	},
	{ID: 37, Dichotomy: DichotomySN, A: 0.85, B: 0.71,
		Stem:    "When planning a trip, do you rely on:",
		OptionA: Option{Key: "A", Text: "Checked facts, maps, and timetables", Positive: true},
		OptionB: Option{Key: "B", Text: "A general sense of how it will unfold"},
	},
	{ID: 38, Dichotomy: DichotomySN, A: 1.25, B: -0.06,
		Stem:    "Are you more interested in:",
		OptionA: Option{Key: "A", Text: "What is", Positive: true},
		OptionB: Option{Key: "B", Text: "What might be"},
	},
	{ID: 39, Dichotomy: DichotomySN, A: 1.11, B: 0.49,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Fascinating"},
		OptionB: Option{Key: "B", Text: "Sensible", Positive: true},
	},
	{ID: 40, Dichotomy: DichotomySN, A: 1.36, B: -0.62,
		Stem:    "Do new ideas appeal to you mainly when they:",
		OptionA: Option{Key: "A", Text: "Have a clear practical use", Positive: true},
		OptionB: Option{Key: "B", Text: "Open up further possibilities"},
	},
	{ID: 41, Dichotomy: DichotomySN, A: 0.99, B: 0.92,
		Stem:    "Do you notice first:",
		OptionA: Option{Key: "A", Text: "The details in front of you", Positive: true},
		OptionB: Option{Key: "B", Text: "The overall pattern"},
	},
	{ID: 42, Dichotomy: DichotomySN, A: 1.2, B: -0.44,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Foundation", Positive: true},
		OptionB: Option{Key: "B", Text: "Spire"},
	},
	{ID: 43, Dichotomy: DichotomySN, A: 1.07, B: 0.24,
		Stem:    "When someone explains with an analogy, do you:",
		OptionA: Option{Key: "A", Text: "Wish they would just state the facts", Positive: true},
		OptionB: Option{Key: "B", Text: "Enjoy the comparison"},
	},
	{ID: 44, Dichotomy: DichotomySN, A: 1.29, B: -0.97,
		Stem:    "Would you rather have as a colleague someone who is:",
		OptionA: Option{Key: "A", Text: "Always realistic", Positive: true},
		OptionB: Option{Key: "B", Text: "Always inventive"},
	},
	{ID: 45, Dichotomy: DichotomySN, A: 0.88, B: 0.56,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Experience", Positive: true},
		OptionB: Option{Key: "B", Text: "Hunch"},
	},
	{ID: 46, Dichotomy: DichotomySN, A: 1.16, B: -0.15,
		Stem:    "Do you consider yourself more:",
		OptionA: Option{Key: "A", Text: "Observant of what is around you", Positive: true},
		OptionB: Option{Key: "B", Text: "Absorbed in what it suggests"},
	},

	// T-F (24 items, ids 47-70). Positive pole: T.
	{ID: 47, Dichotomy: DichotomyTF, A: 1.23, B: -0.31,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Justice", Positive: true},
		OptionB: Option{Key: "B", Text: "Mercy"},
	},
	{ID: 48, Dichotomy: DichotomyTF, A: 1.35, B: 0.19,
		Stem:    "When making a hard decision, do you give more weight to:",
		OptionA: Option{Key: "A", Text: "The logic of the situation", Positive: true},
		OptionB: Option{Key: "B", Text: "How the people involved will feel"},
	},
	{ID: 49, Dichotomy: DichotomyTF, A: 0.92, B: -0.68,
		Stem:    "Is it worse to be:",
		OptionA: Option{Key: "A", Text: "Unreasonable"},
		OptionB: Option{Key: "B", Text: "Unsympathetic", Positive: true},
	},
	{ID: 50, Dichotomy: DichotomyTF, A: 1.14, B: 0.47,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Warm-hearted"},
		OptionB: Option{Key: "B", Text: "Clear-headed", Positive: true},
	},
	{ID: 51, Dichotomy: DichotomyTF, A: 1.28, B: -0.09,
		Stem:    "When a friend presents a flawed plan, do you first:",
		OptionA: Option{Key: "A", Text: "Point out the flaws", Positive: true},
		OptionB: Option{Key: "B", Text: "Find something encouraging to say"},
	},
	{ID: 52, Dichotomy: DichotomyTF, A: 0.98, B: 0.74,
		Stem:    "Do you value more in yourself:",
		OptionA: Option{Key: "A", Text: "Consistency of thought", Positive: true},
		OptionB: Option{Key: "B", Text: "Warmth in relationships"},
	},
	{ID: 53, Dichotomy: DichotomyTF, A: 1.19, B: -0.52,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Analyze", Positive: true},
		OptionB: Option{Key: "B", Text: "Sympathize"},
	},
	{ID: 54, Dichotomy: DichotomyTF, A: 1.42, B: 0.31,
		Stem:    "In a disagreement, is it more important to:",
		OptionA: Option{Key: "A", Text: "Settle who is right", Positive: true},
		OptionB: Option{Key: "B", Text: "Keep the relationship intact"},
	},
	{ID: 55, Dichotomy: DichotomyTF, A: 0.86, B: -0.88,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Devoted"},
		OptionB: Option{Key: "B", Text: "Determined", Positive: true},
	},
	{ID: 56, Dichotomy: DichotomyTF, A: 1.1, B: 0.06,
		Stem:    "Are you more often:",
		OptionA: Option{Key: "A", Text: "Cool and objective", Positive: true},
		OptionB: Option{Key: "B", Text: "Warm and personal"},
	},
	{ID: 57, Dichotomy: DichotomyTF, A: 1.26, B: -0.42,
		Stem:    "Is it a higher compliment to be called:",
		OptionA: Option{Key: "A", Text: "Competent", Positive: true},
		OptionB: Option{Key: "B", Text: "Kind"},
	},
	{ID: 58, Dichotomy: DichotomyTF, A: 0.95, B: 0.63,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Gentle"},
		OptionB: Option{Key: "B", Text: "Firm", Positive: true},
	},
	{ID: 59, Dichotomy: DichotomyTF, A: 1.33, B: -0.17,
		Stem:    "When reviewing someone's work, do you lead with:",
		OptionA: Option{Key: "A", Text: "What needs fixing", Positive: true},
		OptionB: Option{Key: "B", Text: "What they did well"},
	},
	{ID: 60, Dichotomy: DichotomyTF, A: 1.04, B: 0.39,
		Stem:    "Do you more naturally notice:",
		OptionA: Option{Key: "A", Text: "Inconsistencies in an argument", Positive: true},
		OptionB: Option{Key: "B", Text: "Whether people are at ease"},
	},
	{ID: 61, Dichotomy: DichotomyTF, A: 1.21, B: -0.75,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Critique", Positive: true},
		OptionB: Option{Key: "B", Text: "Appreciate"},
	},
	{ID: 62, Dichotomy: DichotomyTF, A: 0.89, B: 0.81,
		Stem:    "Should rules be applied:",
		OptionA: Option{Key: "A", Text: "Evenly, regardless of circumstances", Positive: true},
		OptionB: Option{Key: "B", Text: "With room for individual situations"},
	},
	{ID: 63, Dichotomy: DichotomyTF, A: 1.17, B: 0.01,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Compassion"},
		OptionB: Option{Key: "B", Text: "Foresight", Positive: true},
	},
	{ID: 64, Dichotomy: DichotomyTF, A: 1.39, B: -0.29,
		Stem:    "When someone is upset about a problem, your instinct is to:",
		OptionA: Option{Key: "A", Text: "Help them solve it", Positive: true},
		OptionB: Option{Key: "B", Text: "Help them feel heard"},
	},
	{ID: 65, Dichotomy: DichotomyTF, A: 0.97, B: 0.55,
		Stem:    "Are you swayed more by:",
		OptionA: Option{Key: "A", Text: "A convincing argument", Positive: true},
		OptionB: Option{Key: "B", Text: "A moving appeal"},
	},
	{ID: 66, Dichotomy: DichotomyTF, A: 1.12, B: -0.61,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Tough-minded", Positive: true},
		OptionB: Option{Key: "B", Text: "Tender-hearted"},
	},
	{ID: 67, Dichotomy: DichotomyTF, A: 1.3, B: 0.23,
		Stem:    "In giving difficult feedback, do you aim first to be:",
		OptionA: Option{Key: "A", Text: "Accurate", Positive: true},
		OptionB: Option{Key: "B", Text: "Tactful"},
	},
	{ID: 68, Dichotomy: DichotomyTF, A: 0.91, B: -0.96,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Harmony"},
		OptionB: Option{Key: "B", Text: "Rigor", Positive: true},
	},
	{ID: 69, Dichotomy: DichotomyTF, A: 1.08, B: 0.44,
		Stem:    "Do you think it is a worse fault to:",
		OptionA: Option{Key: "A", Text: "Show too much feeling", Positive: true},
		OptionB: Option{Key: "B", Text: "Show too little"},
	},
	{ID: 70, Dichotomy: DichotomyTF, A: 1.24, B: -0.12,
		Stem:    "Would you rather work for a manager who is:",
		OptionA: Option{Key: "A", Text: "Fair but demanding", Positive: true},
		OptionB: Option{Key: "B", Text: "Supportive but lenient"},
	},

	// J-P (22 items, ids 71-92). Positive pole: J.
	{ID: 71, Dichotomy: DichotomyJP, A: 1.27, B: -0.25,
		Stem:    "Do you prefer your days to be:",
		OptionA: Option{Key: "A", Text: "Planned out in advance", Positive: true},
		OptionB: Option{Key: "B", Text: "Open to whatever comes up"},
	},
	{ID: 72, Dichotomy: DichotomyJP, A: 1.13, B: 0.33,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Spontaneous"},
		OptionB: Option{Key: "B", Text: "Scheduled", Positive: true},
	},
	{ID: 73, Dichotomy: DichotomyJP, A: 1.36, B: -0.08,
		Stem:    "When starting a project, do you:",
		OptionA: Option{Key: "A", Text: "Make a plan and follow it", Positive: true},
		OptionB: Option{Key: "B", Text: "Dive in and adjust as you go"},
	},
	{ID: 74, Dichotomy: DichotomyJP, A: 0.9, B: 0.69,
		Stem:    "Does a last-minute change of plans:",
		OptionA: Option{Key: "A", Text: "Unsettle you", Positive: true},
		OptionB: Option{Key: "B", Text: "Energize you"},
	},
	{ID: 75, Dichotomy: DichotomyJP, A: 1.2, B: -0.49,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Settled", Positive: true},
		OptionB: Option{Key: "B", Text: "Flexible"},
	},
	{ID: 76, Dichotomy: DichotomyJP, A: 1.05, B: 0.15,
		Stem:    "Do deadlines feel to you like:",
		OptionA: Option{Key: "A", Text: "Commitments to honor early", Positive: true},
		OptionB: Option{Key: "B", Text: "Targets that sharpen you at the last minute"},
	},
	{ID: 77, Dichotomy: DichotomyJP, A: 1.31, B: -0.63,
		Stem:    "Is your workspace usually:",
		OptionA: Option{Key: "A", Text: "Ordered, with things in their place", Positive: true},
		OptionB: Option{Key: "B", Text: "A working clutter you can navigate"},
	},
	{ID: 78, Dichotomy: DichotomyJP, A: 0.94, B: 0.84,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Wander"},
		OptionB: Option{Key: "B", Text: "Arrive", Positive: true},
	},
	{ID: 79, Dichotomy: DichotomyJP, A: 1.18, B: 0.04,
		Stem:    "Do you get more satisfaction from:",
		OptionA: Option{Key: "A", Text: "Finishing a task", Positive: true},
		OptionB: Option{Key: "B", Text: "Starting one"},
	},
	{ID: 80, Dichotomy: DichotomyJP, A: 1.4, B: -0.36,
		Stem:    "Before a trip, do you:",
		OptionA: Option{Key: "A", Text: "Book the important things ahead", Positive: true},
		OptionB: Option{Key: "B", Text: "Leave room to decide on the spot"},
	},
	{ID: 81, Dichotomy: DichotomyJP, A: 0.87, B: 0.58,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Deliberate", Positive: true},
		OptionB: Option{Key: "B", Text: "Impulsive"},
	},
	{ID: 82, Dichotomy: DichotomyJP, A: 1.22, B: -0.18,
		Stem:    "Once you have decided something, do you:",
		OptionA: Option{Key: "A", Text: "Feel relieved the matter is closed", Positive: true},
		OptionB: Option{Key: "B", Text: "Keep the option of revisiting it"},
	},
	{ID: 83, Dichotomy: DichotomyJP, A: 1.09, B: 0.41,
		Stem:    "Do lists and schedules:",
		OptionA: Option{Key: "A", Text: "Keep you on track", Positive: true},
		OptionB: Option{Key: "B", Text: "Feel like a cage"},
	},
	{ID: 84, Dichotomy: DichotomyJP, A: 1.34, B: -0.71,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Unfolding"},
		OptionB: Option{Key: "B", Text: "Resolved", Positive: true},
	},
	{ID: 85, Dichotomy: DichotomyJP, A: 0.96, B: 0.76,
		Stem:    "At the end of the day, do you prefer to:",
		OptionA: Option{Key: "A", Text: "Know tomorrow's first task", Positive: true},
		OptionB: Option{Key: "B", Text: "See what tomorrow brings"},
	},
	{ID: 86, Dichotomy: DichotomyJP, A: 1.15, B: -0.02,
		Stem:    "Do you buy gifts:",
		OptionA: Option{Key: "A", Text: "Well before the occasion", Positive: true},
		OptionB: Option{Key: "B", Text: "Close to the occasion, when inspiration strikes"},
	},
	{ID: 87, Dichotomy: DichotomyJP, A: 1.29, B: 0.27,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Improvise"},
		OptionB: Option{Key: "B", Text: "Prepare", Positive: true},
	},
	{ID: 88, Dichotomy: DichotomyJP, A: 0.92, B: -0.85,
		Stem:    "Is it more satisfying to have:",
		OptionA: Option{Key: "A", Text: "Matters decided", Positive: true},
		OptionB: Option{Key: "B", Text: "Matters still open"},
	},
	{ID: 89, Dichotomy: DichotomyJP, A: 1.11, B: 0.48,
		Stem:    "When plans and opportunity conflict, do you usually:",
		OptionA: Option{Key: "A", Text: "Stick with the plan", Positive: true},
		OptionB: Option{Key: "B", Text: "Take the opportunity"},
	},
	{ID: 90, Dichotomy: DichotomyJP, A: 1.25, B: -0.55,
		Stem:    "Which word appeals to you more?",
		OptionA: Option{Key: "A", Text: "Methodical", Positive: true},
		OptionB: Option{Key: "B", Text: "Easygoing"},
	},
	{ID: 91, Dichotomy: DichotomyJP, A: 1.02, B: 0.65,
		Stem:    "Do you work best:",
		OptionA: Option{Key: "A", Text: "Steadily, ahead of schedule", Positive: true},
		OptionB: Option{Key: "B", Text: "In bursts, as the deadline nears"},
	},
	{ID: 92, Dichotomy: DichotomyJP, A: 1.19, B: -0.31,
		Stem:    "Do unfinished tasks:",
		OptionA: Option{Key: "A", Text: "Nag at you until they are done", Positive: true},
		OptionB: Option{Key: "B", Text: "Wait comfortably until you get to them"},
	},
}
