package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"engagedeck/modules/core/plan"
	uicore "engagedeck/modules/ui/core"
	"engagedeck/modules/ui/render"
)

const defaultCreativeIdea = "Demo campaign"

// creativeCommand plans a campaign from a creative idea. The idea can
// be given as arguments or entered interactively.
func creativeCommand(args []string) error {
	if err := InitContext(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	idea := strings.TrimSpace(strings.Join(args, " "))
	if idea == "" {
		var err error
		idea, err = promptIdea()
		if err != nil {
			return err
		}
	}

	st, err := GetContext().Store.Load(time.Now())
	if err != nil {
		return err
	}

	autoPlan := plan.Match(idea, st.AutomationRules)

	r := render.New(false)
	width, height := render.TerminalSize()
	fmt.Println(r.Render(uicore.ComposeCreativeStudio(autoPlan.Phrase, autoPlan), width, height-1))
	return nil
}

// promptIdea reads the creative idea from the terminal
func promptIdea() (string, error) {
	rl, err := readline.New(fmt.Sprintf("What do you want to create? [%s]: ", defaultCreativeIdea))
	if err != nil {
		return "", fmt.Errorf("failed to open prompt: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		// ^C or ^D fall back to the default idea
		return defaultCreativeIdea, nil
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultCreativeIdea, nil
	}
	return line, nil
}
