package loop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snakeworld/internal/core"
)

// Script is a recorded sequence of input batches, one batch per tick.
//
// Example:
//
//	seed: 7
//	steps:
//	  - actions: [start]
//	  - actions: [down]
//	  - repeat: 5
type Script struct {
	Seed  int64        `yaml:"seed"`
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep is one input batch, replayed Repeat times (at least once).
type ScriptStep struct {
	Actions []string `yaml:"actions"`
	Repeat  int      `yaml:"repeat"`
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("loop: cannot read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML script and validates its action names.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("loop: cannot parse script: %w", err)
	}
	for i, step := range s.Steps {
		if step.Repeat < 0 {
			return Script{}, fmt.Errorf("loop: step %d: negative repeat %d", i, step.Repeat)
		}
		for _, name := range step.Actions {
			if _, err := core.ParseAction(name); err != nil {
				return Script{}, fmt.Errorf("loop: step %d: %w", i, err)
			}
		}
	}
	return s, nil
}

// Batches expands the steps into one action slice per tick.
func (s Script) Batches() [][]core.Action {
	var out [][]core.Action
	for _, step := range s.Steps {
		var batch []core.Action
		for _, name := range step.Actions {
			a, err := core.ParseAction(name)
			if err != nil {
				continue
			}
			batch = append(batch, a)
		}
		n := max(step.Repeat, 1)
		for j := 0; j < n; j++ {
			out = append(out, append([]core.Action(nil), batch...))
		}
	}
	return out
}

// ScriptInput replays batches in order and reports Quit once they run out.
type ScriptInput struct {
	batches [][]core.Action
	next    int
}

// NewScriptInput creates an Input that replays the given batches.
func NewScriptInput(batches [][]core.Action) *ScriptInput {
	return &ScriptInput{batches: batches}
}

// Poll implements Input.
func (in *ScriptInput) Poll() []core.Action {
	if in.next >= len(in.batches) {
		return []core.Action{core.ActionQuit}
	}
	b := in.batches[in.next]
	in.next++
	return b
}

// Remaining returns how many batches have not been polled yet.
func (in *ScriptInput) Remaining() int {
	return len(in.batches) - in.next
}
