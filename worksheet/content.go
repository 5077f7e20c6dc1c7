package worksheet

// DefaultStories is the static story content table. Every story goes through
// the generic composer; "the-pencil" was converted from hand-authored
// worksheet objects into template references like the rest.
func DefaultStories() []StoryContent {
	return []StoryContent{
		{
			Slug:  "the-pencil",
			Title: "The Pencil",
			Narrative: "Marcus finds a chewed yellow pencil in his desk on the first day of school. " +
				"Everything it writes comes true by morning, and everything it erases disappears. " +
				"When his best friend's name vanishes from the class roster, Marcus has one night to write things right.",
			Templates: TemplateRefs{
				Grade3: []string{"sequencing-g3", "vocabulary-g3", "comprehension-g3"},
				Grade4: []string{"sequencing-g4", "cause-effect-g4", "plot-g4", "comprehension-g4"},
				Grade5: []string{"plot-g5", "cause-effect-g5", "vocabulary-g5", "comprehension-g5"},
			},
			Data: StoryData{
				SequencingEvents: []string{
					"Marcus finds the chewed pencil in his desk.",
					"His spelling test grade changes overnight.",
					"He erases a doodle and the gym mural disappears.",
					"Dana's name is missing from the class roster.",
					"Marcus writes the whole page back by hand.",
				},
				CauseEffectPairs: []CauseEffectPair{
					{Cause: "Marcus writes that he aced the spelling test.", Effect: "His graded test changes to a perfect score overnight."},
					{Cause: "Marcus erases his doodle of the gym mural.", Effect: "The real mural vanishes from the gym wall."},
					{Cause: "The pencil smudges over Dana's name.", Effect: "Dana's name disappears from the class roster."},
				},
				PlotPoints: []PlotPoint{
					{Label: "Exposition", Prompt: "Where does Marcus find the pencil, and what is odd about it?"},
					{Label: "Rising Action", Prompt: "List two small changes Marcus notices before anything scary happens."},
					{Label: "Climax", Prompt: "What does Marcus discover about Dana's name?"},
					{Label: "Falling Action", Prompt: "How does Marcus try to undo the erasing?"},
					{Label: "Resolution", Prompt: "What does Marcus do with the pencil at the end?"},
				},
				VocabularyWords: []VocabularyWord{
					{Word: "smudge", Definition: "a blurry mark made by rubbing"},
					{Word: "roster", Definition: "an official list of names"},
					{Word: "vanish", Definition: "to disappear suddenly and completely"},
					{Word: "frantic", Definition: "wild with fear or worry"},
				},
				ComprehensionQuestions: []string{
					"Why doesn't Marcus tell his teacher about the pencil?",
					"What rule does the pencil seem to follow?",
					"How does Marcus figure out that erasing is dangerous?",
					"What would you have written with the pencil? Why?",
				},
			},
		},
		{
			Slug:  "the-vanishing-house",
			Title: "The Vanishing House",
			Narrative: "Number 13 Juniper Lane only appears on foggy nights, and no two visitors see the same front door. " +
				"Priya maps every appearance in her notebook until the house starts appearing wherever she is.",
			Templates: TemplateRefs{
				Grade3: []string{"sequencing-g3", "cause-effect-g3", "comprehension-g3"},
				Grade4: []string{"sequencing-g4", "plot-g4", "vocabulary-g4", "comprehension-g4"},
				Grade5: []string{"sequencing-g5", "plot-g5", "comprehension-g5"},
			},
			Data: StoryData{
				SequencingEvents: []string{
					"Priya spots the house during the first fog of October.",
					"She starts a notebook of every appearance.",
					"The house shows up across from her school.",
					"Priya knocks on the door that only she can see.",
					"The fog clears and the notebook's pages are blank.",
				},
				CauseEffectPairs: []CauseEffectPair{
					{Cause: "Priya maps the house's appearances.", Effect: "The house begins appearing wherever she goes."},
					{Cause: "Priya knocks on the front door.", Effect: "Every page of her notebook goes blank."},
				},
				PlotPoints: []PlotPoint{
					{Label: "Exposition", Prompt: "What is strange about number 13 Juniper Lane?"},
					{Label: "Rising Action", Prompt: "How does the house's behavior change after Priya starts her notebook?"},
					{Label: "Climax", Prompt: "What happens when Priya finally knocks?"},
					{Label: "Falling Action", Prompt: "What does Priya find in her notebook afterward?"},
					{Label: "Resolution", Prompt: "Why do you think the house stops appearing?"},
				},
				VocabularyWords: []VocabularyWord{
					{Word: "loom", Definition: "to appear large and threatening"},
					{Word: "threshold", Definition: "the strip of floor at the bottom of a doorway"},
					{Word: "meticulous", Definition: "very careful and precise"},
				},
				ComprehensionQuestions: []string{
					"Why does Priya keep the notebook secret?",
					"What clues suggest the house is watching her back?",
					"What do the blank pages mean, in your opinion?",
				},
			},
		},
		{
			Slug:  "whisper-lake",
			Title: "Whisper Lake",
			Narrative: "At summer camp, Theo hears his own voice calling from the middle of the lake at night, " +
				"repeating things he said earlier that day. The echoes are one day behind, until the night they get ahead.",
			Templates: TemplateRefs{
				Grade3: []string{"sequencing-g3", "vocabulary-g3", "comprehension-g3"},
				Grade4: []string{"cause-effect-g4", "sequencing-g4", "comprehension-g4"},
				Grade5: []string{"plot-g5", "vocabulary-g5", "cause-effect-g5", "comprehension-g5"},
			},
			Data: StoryData{
				SequencingEvents: []string{
					"Theo hears his own voice during the campfire.",
					"He tests the echo by shouting a made-up word.",
					"The echo repeats the word a day later.",
					"The echo says something Theo hasn't said yet.",
					"Theo rows out at dawn to answer it.",
				},
				CauseEffectPairs: []CauseEffectPair{
					{Cause: "Theo shouts a made-up word across the water.", Effect: "The lake repeats it the next night."},
					{Cause: "The echo gets a day ahead.", Effect: "Theo can hear tomorrow before it happens."},
					{Cause: "Theo answers the voice from the rowboat.", Effect: "The echoes fall silent for the rest of camp."},
				},
				PlotPoints: []PlotPoint{
					{Label: "Exposition", Prompt: "What does Theo notice during the campfire sing-along?"},
					{Label: "Rising Action", Prompt: "How does Theo test the lake?"},
					{Label: "Climax", Prompt: "What does the echo say that frightens him?"},
					{Label: "Falling Action", Prompt: "What choice does Theo make at dawn?"},
					{Label: "Resolution", Prompt: "How is the lake different afterward?"},
				},
				VocabularyWords: []VocabularyWord{
					{Word: "echo", Definition: "a sound that repeats after bouncing back"},
					{Word: "ripple", Definition: "a small wave moving across water"},
					{Word: "uncanny", Definition: "strange in a way that is hard to explain"},
				},
				ComprehensionQuestions: []string{
					"How does Theo prove the echo is really his voice?",
					"Why is an echo that is ahead scarier than one that is behind?",
					"What do you think Theo said to the lake at dawn?",
				},
			},
		},
		{
			Slug:  "the-substitute",
			Title: "The Substitute",
			Narrative: "The substitute teacher knows everyone's name without a seating chart, never blinks during lessons, " +
				"and writes tomorrow's date on the board every morning. Room 214 decides to find out why.",
			Templates: TemplateRefs{
				Grade3: []string{"cause-effect-g3", "plot-g3", "comprehension-g3"},
				Grade4: []string{"sequencing-g4", "vocabulary-g4", "plot-g4", "comprehension-g4"},
				Grade5: []string{"sequencing-g5", "cause-effect-g5", "comprehension-g5"},
			},
			Data: StoryData{
				SequencingEvents: []string{
					"Mr. Grey writes tomorrow's date on the board.",
					"He answers a question before Jamal asks it.",
					"The class plants a fake rumor to test him.",
					"Mr. Grey corrects the rumor a day early.",
					"The class finds the note he left for the real teacher.",
				},
				CauseEffectPairs: []CauseEffectPair{
					{Cause: "The class plants a fake rumor on Tuesday.", Effect: "Mr. Grey corrects it on Monday."},
					{Cause: "Jamal raises his hand to ask about fractions.", Effect: "Mr. Grey answers before the question is asked."},
				},
				PlotPoints: []PlotPoint{
					{Label: "Exposition", Prompt: "List three strange things about Mr. Grey's first morning."},
					{Label: "Rising Action", Prompt: "How does the class test him?"},
					{Label: "Climax", Prompt: "What does the note in the desk reveal?"},
					{Label: "Falling Action", Prompt: "What does the class decide to do about it?"},
					{Label: "Resolution", Prompt: "Who is teaching the class on the last page?"},
				},
				VocabularyWords: []VocabularyWord{
					{Word: "substitute", Definition: "a person who takes the place of another"},
					{Word: "rumor", Definition: "a story passed around that may not be true"},
					{Word: "peculiar", Definition: "odd or unusual"},
					{Word: "deliberate", Definition: "done on purpose"},
				},
				ComprehensionQuestions: []string{
					"What is the first clue that Mr. Grey is not ordinary?",
					"Why does the class choose a rumor as their test?",
					"What does the date on the board turn out to mean?",
				},
			},
		},
	}
}
