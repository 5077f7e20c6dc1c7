package worksheet

/* Composes per-story, per-grade worksheets from reusable templates plus
 * story-specific data. Pure function of the static tables: the same
 * (story, grade) always yields the same sections in the same order. */

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"midnightgrove/error_messages"
)

type Grade int

const (
	Grade3 Grade = 3
	Grade4 Grade = 4
	Grade5 Grade = 5
)

func (g Grade) Valid() bool {
	return g == Grade3 || g == Grade4 || g == Grade5
}

// ActivityType enumerates the worksheet activities. Adding one is a
// compile-time change: propsFor and String must both cover it.
type ActivityType int

const (
	ActivitySequencing ActivityType = iota
	ActivityCauseEffect
	ActivityPlot
	ActivityVocabulary
	ActivityComprehension
)

func (t ActivityType) String() string {
	switch t {
	case ActivitySequencing:
		return "sequencing"
	case ActivityCauseEffect:
		return "cause-effect"
	case ActivityPlot:
		return "plot"
	case ActivityVocabulary:
		return "vocabulary"
	case ActivityComprehension:
		return "comprehension"
	}
	return "unknown"
}

func (t ActivityType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Template is a reusable, story-agnostic activity definition, keyed by ID.
type Template struct {
	ID           string       `json:"id"`
	ActivityType ActivityType `json:"activityType"`
	Grade        Grade        `json:"grade"`
	Title        string       `json:"title"`
	Instructions string       `json:"instructions"`
	TimeEstimate string       `json:"timeEstimate"`
	SOLStandards []string     `json:"solStandards"`
}

// Props is the activity-specific payload of a composed section. The set of
// implementations is closed; renderers switch on the concrete type.
type Props interface {
	activityType() ActivityType
}

type SequencingProps struct {
	Events []string `json:"events"`
}

type CauseEffectPair struct {
	Cause  string `json:"cause"`
	Effect string `json:"effect"`
}

type CauseEffectProps struct {
	Pairs []CauseEffectPair `json:"pairs"`
}

type PlotPoint struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type PlotProps struct {
	Points []PlotPoint `json:"points"`
}

type VocabularyWord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type VocabularyProps struct {
	Words []VocabularyWord `json:"words"`
}

type ComprehensionProps struct {
	Questions []string `json:"questions"`
}

func (SequencingProps) activityType() ActivityType    { return ActivitySequencing }
func (CauseEffectProps) activityType() ActivityType   { return ActivityCauseEffect }
func (PlotProps) activityType() ActivityType          { return ActivityPlot }
func (VocabularyProps) activityType() ActivityType    { return ActivityVocabulary }
func (ComprehensionProps) activityType() ActivityType { return ActivityComprehension }

// StoryData is the story-specific fill-in material, grouped per activity.
type StoryData struct {
	SequencingEvents       []string
	CauseEffectPairs       []CauseEffectPair
	PlotPoints             []PlotPoint
	VocabularyWords        []VocabularyWord
	ComprehensionQuestions []string
}

// TemplateRefs lists the template ids assigned to a story, per grade, in
// authored order.
type TemplateRefs struct {
	Grade3 []string
	Grade4 []string
	Grade5 []string
}

func (r TemplateRefs) ForGrade(grade Grade) ([]string, bool) {
	switch grade {
	case Grade3:
		return r.Grade3, true
	case Grade4:
		return r.Grade4, true
	case Grade5:
		return r.Grade5, true
	}
	return nil, false
}

// StoryContent is one story's narrative plus its worksheet material.
type StoryContent struct {
	Slug      string
	Title     string
	Narrative string
	Templates TemplateRefs
	Data      StoryData
}

// Section is a merge view over one template and its story data. It never
// exists independently of its sources and is rebuilt on every request.
type Section struct {
	TemplateID   string       `json:"templateId"`
	ActivityType ActivityType `json:"activityType"`
	Title        string       `json:"title"`
	Instructions string       `json:"instructions"`
	TimeEstimate string       `json:"timeEstimate"`
	SOLStandards []string     `json:"solStandards"`
	Props        Props        `json:"props"`
}

type Worksheet struct {
	StorySlug  string    `json:"storySlug"`
	StoryTitle string    `json:"storyTitle"`
	Grade      Grade     `json:"grade"`
	Sections   []Section `json:"sections"`
}

// Composer merges the static template and content tables.
type Composer struct {
	templates map[string]Template
	stories   map[string]StoryContent
	logger    *log.Logger
}

func NewComposer(templates []Template, stories []StoryContent, logger *log.Logger) *Composer {
	byID := make(map[string]Template, len(templates))
	for _, tmpl := range templates {
		byID[tmpl.ID] = tmpl
	}
	bySlug := make(map[string]StoryContent, len(stories))
	for _, story := range stories {
		bySlug[story.Slug] = story
	}
	return &Composer{templates: byID, stories: bySlug, logger: logger}
}

// Stories returns the known story slugs, sorted, for catalog-style listings.
func (c *Composer) Stories() []string {
	slugs := make([]string, 0, len(c.stories))
	for slug := range c.stories {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Compose builds the worksheet for one story and grade. A template id with
// no matching template or no matching story data drops that section with a
// warning; the remaining sections still compose, in authored order.
func (c *Composer) Compose(storySlug string, grade Grade) (*Worksheet, error) {
	story, ok := c.stories[storySlug]
	if !ok {
		return nil, error_messages.ErrUnknownStory
	}

	ids, ok := story.Templates.ForGrade(grade)
	if !ok {
		return nil, error_messages.ErrUnknownGrade
	}

	sections := make([]Section, 0, len(ids))
	for _, id := range ids {
		tmpl, ok := c.templates[id]
		if !ok {
			c.logger.WithFields(log.Fields{
				"story":    storySlug,
				"template": id,
			}).Warn("Worksheet template not found, dropping section")
			continue
		}

		props, ok := propsFor(tmpl.ActivityType, story.Data)
		if !ok {
			c.logger.WithFields(log.Fields{
				"story":    storySlug,
				"template": id,
				"activity": tmpl.ActivityType.String(),
			}).Warn("Story has no data for activity, dropping section")
			continue
		}

		sections = append(sections, Section{
			TemplateID:   tmpl.ID,
			ActivityType: tmpl.ActivityType,
			Title:        tmpl.Title,
			Instructions: tmpl.Instructions,
			TimeEstimate: tmpl.TimeEstimate,
			SOLStandards: tmpl.SOLStandards,
			Props:        props,
		})
	}

	return &Worksheet{
		StorySlug:  story.Slug,
		StoryTitle: story.Title,
		Grade:      grade,
		Sections:   sections,
	}, nil
}

func propsFor(activity ActivityType, data StoryData) (Props, bool) {
	switch activity {
	case ActivitySequencing:
		if len(data.SequencingEvents) == 0 {
			return nil, false
		}
		return SequencingProps{Events: data.SequencingEvents}, true
	case ActivityCauseEffect:
		if len(data.CauseEffectPairs) == 0 {
			return nil, false
		}
		return CauseEffectProps{Pairs: data.CauseEffectPairs}, true
	case ActivityPlot:
		if len(data.PlotPoints) == 0 {
			return nil, false
		}
		return PlotProps{Points: data.PlotPoints}, true
	case ActivityVocabulary:
		if len(data.VocabularyWords) == 0 {
			return nil, false
		}
		return VocabularyProps{Words: data.VocabularyWords}, true
	case ActivityComprehension:
		if len(data.ComprehensionQuestions) == 0 {
			return nil, false
		}
		return ComprehensionProps{Questions: data.ComprehensionQuestions}, true
	}
	return nil, false
}
