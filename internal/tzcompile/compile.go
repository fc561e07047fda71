// Package tzcompile turns YAML zone definitions into zone rules ready
// for the binary archive or a sqlite database.
//
// A definition file carries a data version and one entry per zone: the
// initial standard and wall offsets, the historical transitions in
// local time, and the projection rules applied beyond them. Unknown
// fields are rejected so typos fail the compile instead of silently
// dropping data.
package tzcompile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"chrono/internal/civil"
	"chrono/internal/zone"
)

// ErrCompile reports a zone definition that cannot be compiled.
var ErrCompile = errors.New("tzcompile: invalid zone definition")

// Compilation is the result of compiling a definition file.
type Compilation struct {
	Version string
	Zones   map[string]*zone.Rules
}

type document struct {
	Version string    `yaml:"version"`
	Zones   []zoneDef `yaml:"zones"`
}

type zoneDef struct {
	ID              string      `yaml:"id"`
	Standard        string      `yaml:"standard"`
	Initial         string      `yaml:"initial"`
	StandardChanges []changeDef `yaml:"standard_changes"`
	Transitions     []transDef  `yaml:"transitions"`
	Rules           []ruleDef   `yaml:"rules"`
}

type changeDef struct {
	At     int64  `yaml:"at"`
	Offset string `yaml:"offset"`
}

type transDef struct {
	At     string `yaml:"at"`
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

type ruleDef struct {
	Month          int    `yaml:"month"`
	Day            int    `yaml:"day"`
	DayOfWeek      int    `yaml:"day_of_week"`
	Time           string `yaml:"time"`
	EndOfDay       bool   `yaml:"end_of_day"`
	TimeDefinition string `yaml:"time_definition"`
	Standard       string `yaml:"standard"`
	Before         string `yaml:"before"`
	After          string `yaml:"after"`
}

// Compile reads a YAML definition document and builds rules for every
// zone it names.
func Compile(r io.Reader) (*Compilation, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrCompile)
	}

	zones := make(map[string]*zone.Rules, len(doc.Zones))
	for _, def := range doc.Zones {
		if def.ID == "" {
			return nil, fmt.Errorf("%w: zone with empty id", ErrCompile)
		}
		if _, dup := zones[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate zone %q", ErrCompile, def.ID)
		}
		rules, err := compileZone(def)
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", def.ID, err)
		}
		zones[def.ID] = rules
	}
	return &Compilation{Version: doc.Version, Zones: zones}, nil
}

func compileZone(def zoneDef) (*zone.Rules, error) {
	initialWall, err := parseOffset("initial", def.Initial)
	if err != nil {
		return nil, err
	}
	initialStandard := initialWall
	if def.Standard != "" {
		if initialStandard, err = parseOffset("standard", def.Standard); err != nil {
			return nil, err
		}
	}

	changes := make([]zone.StandardChange, 0, len(def.StandardChanges))
	for _, c := range def.StandardChanges {
		offset, err := parseOffset("standard change", c.Offset)
		if err != nil {
			return nil, err
		}
		changes = append(changes, zone.StandardChange{EpochSecond: c.At, Offset: offset})
	}

	transitions := make([]zone.Transition, 0, len(def.Transitions))
	for _, td := range def.Transitions {
		local, err := civil.ParseDateTime(td.At)
		if err != nil {
			return nil, fmt.Errorf("%w: transition at %q: %v", ErrCompile, td.At, err)
		}
		before, err := parseOffset("before", td.Before)
		if err != nil {
			return nil, err
		}
		after, err := parseOffset("after", td.After)
		if err != nil {
			return nil, err
		}
		t, err := zone.NewTransition(local, before, after)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	rules := make([]zone.TransitionRule, 0, len(def.Rules))
	for _, rd := range def.Rules {
		rule, err := compileRule(rd)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return zone.NewRules(initialStandard, initialWall, changes, transitions, rules)
}

func compileRule(rd ruleDef) (zone.TransitionRule, error) {
	timeOfDay := civil.Midnight
	if rd.Time != "" {
		var err error
		if timeOfDay, err = civil.ParseTime(rd.Time); err != nil {
			return zone.TransitionRule{}, fmt.Errorf("%w: rule time %q: %v", ErrCompile, rd.Time, err)
		}
	}
	definition, err := parseTimeDefinition(rd.TimeDefinition)
	if err != nil {
		return zone.TransitionRule{}, err
	}
	standard, err := parseOffset("rule standard", rd.Standard)
	if err != nil {
		return zone.TransitionRule{}, err
	}
	before, err := parseOffset("rule before", rd.Before)
	if err != nil {
		return zone.TransitionRule{}, err
	}
	after, err := parseOffset("rule after", rd.After)
	if err != nil {
		return zone.TransitionRule{}, err
	}
	rule := zone.TransitionRule{
		Month:          rd.Month,
		DayOfMonth:     rd.Day,
		DayOfWeek:      rd.DayOfWeek,
		TimeOfDay:      timeOfDay,
		EndOfDay:       rd.EndOfDay,
		Definition:     definition,
		StandardOffset: standard,
		OffsetBefore:   before,
		OffsetAfter:    after,
	}
	if err := rule.Validate(); err != nil {
		return zone.TransitionRule{}, err
	}
	return rule, nil
}

func parseTimeDefinition(name string) (zone.TimeDefinition, error) {
	switch name {
	case "utc":
		return zone.TimeUTC, nil
	case "wall", "":
		return zone.TimeWall, nil
	case "standard":
		return zone.TimeStandard, nil
	}
	return 0, fmt.Errorf("%w: unknown time definition %q", ErrCompile, name)
}

func parseOffset(field, text string) (civil.Offset, error) {
	if text == "" {
		return civil.Offset{}, fmt.Errorf("%w: missing %s offset", ErrCompile, field)
	}
	offset, err := civil.ParseOffset(text)
	if err != nil {
		return civil.Offset{}, fmt.Errorf("%w: %s offset %q: %v", ErrCompile, field, text, err)
	}
	return offset, nil
}
