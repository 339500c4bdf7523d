package game

import (
	"fmt"
	"strconv"
	"strings"
)

type ActionType int

const (
	WaitAction ActionType = iota
	SeedAction
	GrowAction
	CompleteAction
)

// Action is one move in the game: a closed tagged value. Source is only
// meaningful for Seed (the cell of the seeding tree); Target is the acted-on
// cell for Seed, Grow and Complete. Unused fields hold NoCell.
type Action struct {
	Type   ActionType
	Source int
	Target int
}

func Wait() Action {
	return Action{Type: WaitAction, Source: NoCell, Target: NoCell}
}

func Seed(source, target int) Action {
	return Action{Type: SeedAction, Source: source, Target: target}
}

func Grow(target int) Action {
	return Action{Type: GrowAction, Source: NoCell, Target: target}
}

func Complete(target int) Action {
	return Action{Type: CompleteAction, Source: NoCell, Target: target}
}

// String renders the action in its wire form: one of
// "WAIT", "SEED <source> <target>", "GROW <cell>", "COMPLETE <cell>".
func (a Action) String() string {
	switch a.Type {
	case WaitAction:
		return "WAIT"
	case SeedAction:
		return fmt.Sprintf("SEED %d %d", a.Source, a.Target)
	case GrowAction:
		return fmt.Sprintf("GROW %d", a.Target)
	case CompleteAction:
		return fmt.Sprintf("COMPLETE %d", a.Target)
	default:
		panic(fmt.Sprintf("unknown action type %d", a.Type))
	}
}

// ParseAction parses the wire form of an action.
func ParseAction(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action line")
	}

	arg := func(i int) (int, error) {
		if i >= len(fields) {
			return 0, fmt.Errorf("action %q: missing argument %d", line, i)
		}
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return 0, fmt.Errorf("action %q: bad argument %q", line, fields[i])
		}
		return v, nil
	}

	switch fields[0] {
	case "WAIT":
		return Wait(), nil
	case "SEED":
		source, err := arg(1)
		if err != nil {
			return Action{}, err
		}
		target, err := arg(2)
		if err != nil {
			return Action{}, err
		}
		return Seed(source, target), nil
	case "GROW":
		target, err := arg(1)
		if err != nil {
			return Action{}, err
		}
		return Grow(target), nil
	case "COMPLETE":
		target, err := arg(1)
		if err != nil {
			return Action{}, err
		}
		return Complete(target), nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", fields[0])
	}
}
