package worksheet

import (
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midnightgrove/error_messages"
)

func testLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func defaultComposer() *Composer {
	return NewComposer(DefaultTemplates(), DefaultStories(), testLogger())
}

func TestCompose_KnownStoryAndGrade(t *testing.T) {
	composer := defaultComposer()

	sheet, err := composer.Compose("the-pencil", Grade4)

	require.NoError(t, err)
	assert.Equal(t, "the-pencil", sheet.StorySlug)
	assert.Equal(t, "The Pencil", sheet.StoryTitle)
	assert.Equal(t, Grade4, sheet.Grade)
	require.Len(t, sheet.Sections, 4)

	// Sections follow the authored template-id order.
	assert.Equal(t, "sequencing-g4", sheet.Sections[0].TemplateID)
	assert.Equal(t, "cause-effect-g4", sheet.Sections[1].TemplateID)
	assert.Equal(t, "plot-g4", sheet.Sections[2].TemplateID)
	assert.Equal(t, "comprehension-g4", sheet.Sections[3].TemplateID)
}

func TestCompose_PropsMatchActivityType(t *testing.T) {
	composer := defaultComposer()

	sheet, err := composer.Compose("the-pencil", Grade4)
	require.NoError(t, err)

	seq, ok := sheet.Sections[0].Props.(SequencingProps)
	require.True(t, ok)
	assert.NotEmpty(t, seq.Events)

	pairs, ok := sheet.Sections[1].Props.(CauseEffectProps)
	require.True(t, ok)
	assert.NotEmpty(t, pairs.Pairs)
}

func TestCompose_Idempotent(t *testing.T) {
	composer := defaultComposer()

	first, err := composer.Compose("whisper-lake", Grade5)
	require.NoError(t, err)
	second, err := composer.Compose("whisper-lake", Grade5)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same tables, same output, same order")
}

func TestCompose_UnknownStory(t *testing.T) {
	composer := defaultComposer()

	_, err := composer.Compose("the-haunted-fax-machine", Grade3)

	assert.ErrorIs(t, err, error_messages.ErrUnknownStory)
}

func TestCompose_UnknownGrade(t *testing.T) {
	composer := defaultComposer()

	_, err := composer.Compose("the-pencil", Grade(7))

	assert.ErrorIs(t, err, error_messages.ErrUnknownGrade)
}

func TestCompose_DanglingTemplateIDDropped(t *testing.T) {
	templates := []Template{
		{ID: "seq", ActivityType: ActivitySequencing, Grade: Grade3, Title: "Sequencing"},
		{ID: "vocab", ActivityType: ActivityVocabulary, Grade: Grade3, Title: "Vocabulary"},
	}
	stories := []StoryContent{{
		Slug:  "test-story",
		Title: "Test Story",
		Templates: TemplateRefs{
			Grade3: []string{"seq", "missing-template", "vocab"},
		},
		Data: StoryData{
			SequencingEvents: []string{"first", "second"},
			VocabularyWords:  []VocabularyWord{{Word: "eerie", Definition: "strange and frightening"}},
		},
	}}
	composer := NewComposer(templates, stories, testLogger())

	sheet, err := composer.Compose("test-story", Grade3)

	require.NoError(t, err)
	require.Len(t, sheet.Sections, 2, "only the dangling id is dropped")
	assert.Equal(t, "seq", sheet.Sections[0].TemplateID)
	assert.Equal(t, "vocab", sheet.Sections[1].TemplateID)
}

func TestCompose_MissingStoryDataDropsSection(t *testing.T) {
	templates := []Template{
		{ID: "seq", ActivityType: ActivitySequencing, Grade: Grade3, Title: "Sequencing"},
		{ID: "plot", ActivityType: ActivityPlot, Grade: Grade3, Title: "Plot"},
	}
	stories := []StoryContent{{
		Slug:  "test-story",
		Title: "Test Story",
		Templates: TemplateRefs{
			Grade3: []string{"seq", "plot"},
		},
		Data: StoryData{
			SequencingEvents: []string{"first", "second"},
			// No plot points: the plot section cannot be filled in.
		},
	}}
	composer := NewComposer(templates, stories, testLogger())

	sheet, err := composer.Compose("test-story", Grade3)

	require.NoError(t, err)
	require.Len(t, sheet.Sections, 1)
	assert.Equal(t, "seq", sheet.Sections[0].TemplateID)
}

// Every template id referenced by the default content tables must resolve
// and fill: composing any (story, grade) yields exactly as many sections as
// ids authored for it.
func TestDefaultTables_FullyResolvable(t *testing.T) {
	composer := defaultComposer()

	for _, story := range DefaultStories() {
		for _, grade := range []Grade{Grade3, Grade4, Grade5} {
			ids, _ := story.Templates.ForGrade(grade)

			sheet, err := composer.Compose(story.Slug, grade)
			require.NoError(t, err)
			assert.Len(t, sheet.Sections, len(ids), "story %s grade %d", story.Slug, grade)
		}
	}
}

func TestDefaultTemplates_GradesMatchIDs(t *testing.T) {
	for _, tmpl := range DefaultTemplates() {
		assert.True(t, tmpl.Grade.Valid(), "template %s has invalid grade", tmpl.ID)
		assert.NotEmpty(t, tmpl.Instructions, "template %s", tmpl.ID)
		assert.NotEmpty(t, tmpl.SOLStandards, "template %s", tmpl.ID)
	}
}
