package worksheet

// DefaultTemplates is the static template table: one definition per activity
// type per grade, keyed by id, aligned to the Virginia SOL reading strands.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:           "sequencing-g3",
			ActivityType: ActivitySequencing,
			Grade:        Grade3,
			Title:        "Story Sequencing Cards",
			Instructions: "Cut out the event cards and arrange them in the order they happened in the story.",
			TimeEstimate: "15 minutes",
			SOLStandards: []string{"3.5.g"},
		},
		{
			ID:           "sequencing-g4",
			ActivityType: ActivitySequencing,
			Grade:        Grade4,
			Title:        "Sequence of Events",
			Instructions: "Number the events from first to last, then explain how one event leads to the next.",
			TimeEstimate: "20 minutes",
			SOLStandards: []string{"4.5.c"},
		},
		{
			ID:           "sequencing-g5",
			ActivityType: ActivitySequencing,
			Grade:        Grade5,
			Title:        "Timeline Builder",
			Instructions: "Build a timeline of the story's events and mark the turning point.",
			TimeEstimate: "20 minutes",
			SOLStandards: []string{"5.5.g"},
		},
		{
			ID:           "cause-effect-g3",
			ActivityType: ActivityCauseEffect,
			Grade:        Grade3,
			Title:        "Cause and Effect Match-Up",
			Instructions: "Draw a line from each cause to the effect it created in the story.",
			TimeEstimate: "15 minutes",
			SOLStandards: []string{"3.5.d"},
		},
		{
			ID:           "cause-effect-g4",
			ActivityType: ActivityCauseEffect,
			Grade:        Grade4,
			Title:        "Because of That...",
			Instructions: "For each cause, write the effect in your own words and find the sentence that proves it.",
			TimeEstimate: "20 minutes",
			SOLStandards: []string{"4.5.d"},
		},
		{
			ID:           "cause-effect-g5",
			ActivityType: ActivityCauseEffect,
			Grade:        Grade5,
			Title:        "Chain Reactions",
			Instructions: "Connect each cause-and-effect pair into a chain showing how the story's trouble grew.",
			TimeEstimate: "25 minutes",
			SOLStandards: []string{"5.5.d"},
		},
		{
			ID:           "plot-g3",
			ActivityType: ActivityPlot,
			Grade:        Grade3,
			Title:        "Beginning, Middle, End",
			Instructions: "Draw or write what happened at each part of the story.",
			TimeEstimate: "20 minutes",
			SOLStandards: []string{"3.5.f"},
		},
		{
			ID:           "plot-g4",
			ActivityType: ActivityPlot,
			Grade:        Grade4,
			Title:        "Plot Mountain",
			Instructions: "Place each plot point on the mountain: exposition, rising action, climax, falling action, resolution.",
			TimeEstimate: "25 minutes",
			SOLStandards: []string{"4.5.b"},
		},
		{
			ID:           "plot-g5",
			ActivityType: ActivityPlot,
			Grade:        Grade5,
			Title:        "Plot Structure Analysis",
			Instructions: "Map the plot points and explain how the climax changes the main character.",
			TimeEstimate: "30 minutes",
			SOLStandards: []string{"5.5.b", "5.5.c"},
		},
		{
			ID:           "vocabulary-g3",
			ActivityType: ActivityVocabulary,
			Grade:        Grade3,
			Title:        "Spooky Word Hunt",
			Instructions: "Find each word in the story and match it to its meaning.",
			TimeEstimate: "15 minutes",
			SOLStandards: []string{"3.4.c"},
		},
		{
			ID:           "vocabulary-g4",
			ActivityType: ActivityVocabulary,
			Grade:        Grade4,
			Title:        "Context Clues",
			Instructions: "Use the sentences around each word to figure out its meaning, then check the definition.",
			TimeEstimate: "20 minutes",
			SOLStandards: []string{"4.4.b"},
		},
		{
			ID:           "vocabulary-g5",
			ActivityType: ActivityVocabulary,
			Grade:        Grade5,
			Title:        "Word Detective",
			Instructions: "Define each word, identify its part of speech, and use it in a sentence of your own.",
			TimeEstimate: "20 minutes",
			SOLStandards: []string{"5.4.c"},
		},
		{
			ID:           "comprehension-g3",
			ActivityType: ActivityComprehension,
			Grade:        Grade3,
			Title:        "Did You Get It?",
			Instructions: "Answer each question in a complete sentence.",
			TimeEstimate: "20 minutes",
			SOLStandards: []string{"3.5.a"},
		},
		{
			ID:           "comprehension-g4",
			ActivityType: ActivityComprehension,
			Grade:        Grade4,
			Title:        "Reading Check",
			Instructions: "Answer each question and underline the part of the story that supports your answer.",
			TimeEstimate: "25 minutes",
			SOLStandards: []string{"4.5.a"},
		},
		{
			ID:           "comprehension-g5",
			ActivityType: ActivityComprehension,
			Grade:        Grade5,
			Title:        "Close Reading Questions",
			Instructions: "Answer each question with evidence from the text. Quote at least one sentence per answer.",
			TimeEstimate: "30 minutes",
			SOLStandards: []string{"5.5.a"},
		},
	}
}
