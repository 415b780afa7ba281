package catalog

import (
	"strconv"

	"github.com/alexanderramin/regwise/internal/domain"
)

// RankWeights scale each ranking factor. Every factor only ever adds, so the
// score is monotonic in open sections, core tags, intro level, credit fit and
// the absence of prerequisites.
type RankWeights struct {
	OpenSection float64
	NoPrereq    float64
	CoreTag     float64
	IntroLevel  float64
	LowerLevel  float64
	CreditFit   float64
	KnownIntro  float64
	MathOnly    float64
}

func DefaultWeights() RankWeights {
	return RankWeights{
		OpenSection: 2,
		NoPrereq:    100,
		CoreTag:     30,
		IntroLevel:  50,
		LowerLevel:  20,
		CreditFit:   20,
		KnownIntro:  200,
		MathOnly:    40,
	}
}

// Course numbers below these thresholds count as intro and lower level.
const (
	introThreshold = 200
	lowerThreshold = 300
)

type RankReasonCode string

const (
	ReasonOpenSections RankReasonCode = "OPEN_SECTIONS"
	ReasonNoPrereq     RankReasonCode = "NO_PREREQUISITES"
	ReasonCoreTags     RankReasonCode = "CORE_TAGS"
	ReasonIntroLevel   RankReasonCode = "INTRO_LEVEL"
	ReasonLowerLevel   RankReasonCode = "LOWER_LEVEL"
	ReasonCreditFit    RankReasonCode = "CREDIT_FIT"
	ReasonKnownIntro   RankReasonCode = "KNOWN_INTRO"
	ReasonMathOnly     RankReasonCode = "MATH_ONLY_PREREQ"
)

type RankReason struct {
	Code  RankReasonCode
	Delta float64
}

// Candidate is a ranked course used for filler and lookup ordering.
type Candidate struct {
	Key          string
	Title        string
	Credits      float64
	OpenSections int
	CoreCodes    []string
	HasPrereq    bool
	Score        float64
	Reasons      []RankReason
}

type rankFactor func(c *domain.Course, w RankWeights) (float64, RankReasonCode)

var baseFactors = []rankFactor{
	scoreOpenSections,
	scoreNoPrereq,
	scoreCoreTags,
	scoreCourseLevel,
	scoreCreditFit,
}

// ScoreCourse ranks a course with the base factors.
func ScoreCourse(c *domain.Course, w RankWeights) Candidate {
	cand := Candidate{
		Key:          c.Key,
		Title:        c.Title,
		Credits:      c.Credits,
		OpenSections: c.OpenSectionCount(),
		CoreCodes:    c.CoreCodes,
		HasPrereq:    c.HasPrerequisites(),
	}
	for _, f := range baseFactors {
		cand.add(f(c, w))
	}
	return cand
}

func (c *Candidate) add(delta float64, code RankReasonCode) {
	if delta == 0 {
		return
	}
	c.Score += delta
	c.Reasons = append(c.Reasons, RankReason{Code: code, Delta: delta})
}

func scoreOpenSections(c *domain.Course, w RankWeights) (float64, RankReasonCode) {
	return float64(c.OpenSectionCount()) * w.OpenSection, ReasonOpenSections
}

func scoreNoPrereq(c *domain.Course, w RankWeights) (float64, RankReasonCode) {
	if c.HasPrerequisites() {
		return 0, ReasonNoPrereq
	}
	return w.NoPrereq, ReasonNoPrereq
}

func scoreCoreTags(c *domain.Course, w RankWeights) (float64, RankReasonCode) {
	return float64(len(c.CoreCodes)) * w.CoreTag, ReasonCoreTags
}

func scoreCourseLevel(c *domain.Course, w RankWeights) (float64, RankReasonCode) {
	n, ok := courseNumber(c.Key)
	switch {
	case !ok:
		return 0, ReasonIntroLevel
	case n < introThreshold:
		return w.IntroLevel, ReasonIntroLevel
	case n < lowerThreshold:
		return w.LowerLevel, ReasonLowerLevel
	}
	return 0, ReasonLowerLevel
}

func scoreCreditFit(c *domain.Course, w RankWeights) (float64, RankReasonCode) {
	if c.Credits >= 3 && c.Credits <= 4 {
		return w.CreditFit, ReasonCreditFit
	}
	return 0, ReasonCreditFit
}

// courseNumber reads the leading digits of the number half of a key.
func courseNumber(key string) (int, bool) {
	_, number, ok := domain.SplitKey(key)
	if !ok || len(number) < domain.KeyWidth {
		return 0, false
	}
	n, err := strconv.Atoi(number[:domain.KeyWidth])
	if err != nil {
		return 0, false
	}
	return n, true
}
