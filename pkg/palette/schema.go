package palette

import (
	"fmt"
	"strings"

	shadeserrors "github.com/alexisbeaulieu97/shades/pkg/errors"
)

// Step is a shade key such as 50 or 500. Ascending steps run light to dark.
type Step int

// System names a step schema.
type System string

const (
	SystemTailwind  System = "tailwind"
	SystemChakra    System = "chakra"
	SystemAntDesign System = "antDesign"
)

// DefaultSystem is used when Options.System is empty.
const DefaultSystem = SystemTailwind

// Step tables are populated at init and never mutated; accessors hand out copies.
var (
	tailwindSteps  = []Step{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	chakraSteps    = []Step{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}
	antDesignSteps = []Step{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	systemSteps = map[System][]Step{
		SystemTailwind:  tailwindSteps,
		SystemChakra:    chakraSteps,
		SystemAntDesign: antDesignSteps,
	}
)

// Systems lists the known schemas.
func Systems() []System {
	return []System{SystemTailwind, SystemChakra, SystemAntDesign}
}

// ParseSystem resolves a schema name, case-insensitively.
func ParseSystem(s string) (System, bool) {
	for _, system := range Systems() {
		if strings.EqualFold(string(system), strings.TrimSpace(s)) {
			return system, true
		}
	}
	return "", false
}

// Steps returns the schema's step keys in ascending order. An empty system
// resolves to DefaultSystem.
func (s System) Steps() ([]Step, error) {
	if s == "" {
		s = DefaultSystem
	}
	steps, ok := systemSteps[s]
	if !ok {
		return nil, shadeserrors.NewColorError(shadeserrors.CodeUnknownSystem, string(s),
			fmt.Sprintf("unknown color system (want one of %s)", joinSystems()), nil)
	}
	return append([]Step(nil), steps...), nil
}

// ShadeSteps returns the fixed 11-step vocabulary used by GenerateShadesForBaseColor.
func ShadeSteps() []Step {
	return append([]Step(nil), tailwindSteps...)
}

func joinSystems() string {
	names := make([]string, 0, len(systemSteps))
	for _, system := range Systems() {
		names = append(names, string(system))
	}
	return strings.Join(names, ", ")
}
