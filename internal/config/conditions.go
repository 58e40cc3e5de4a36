package config

import "fmt"

// ConditionList names one of the ordered pattern lists handed to the
// window-matching engine.
type ConditionList int

const (
	ShadowExclude ConditionList = iota
	FadeExclude
	FocusExclude
	BlurBackgroundExclude
	PaintExclude
	InvertColorInclude
	UnredirIfPossibleExclude

	numConditionLists
)

var conditionListNames = [numConditionLists]string{
	"shadow-exclude",
	"fade-exclude",
	"focus-exclude",
	"blur-background-exclude",
	"paint-exclude",
	"invert-color-include",
	"unredir-if-possible-exclude",
}

func (l ConditionList) String() string {
	if l < 0 || l >= numConditionLists {
		return fmt.Sprintf("condition-list(%d)", int(l))
	}
	return conditionListNames[l]
}

// AllConditionLists returns every list identifier in declaration order.
func AllConditionLists() []ConditionList {
	lists := make([]ConditionList, 0, numConditionLists)
	for l := ConditionList(0); l < numConditionLists; l++ {
		lists = append(lists, l)
	}
	return lists
}

// ConditionSink receives patterns in the order they are encountered.
type ConditionSink interface {
	Append(list ConditionList, pattern string)
}

// ConditionLists is the default ConditionSink: append-only, ordered,
// duplicates kept.
type ConditionLists [numConditionLists][]string

// Append adds pattern to the end of list.
func (c *ConditionLists) Append(list ConditionList, pattern string) {
	c[list] = append(c[list], pattern)
}

// Patterns returns the patterns recorded for list.
func (c *ConditionLists) Patterns(list ConditionList) []string {
	return c[list]
}

// OpacityRule forces a window matching Pattern to Opacity percent.
type OpacityRule struct {
	Opacity int
	Pattern string
}
