package main

import (
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter asks the user for values missing from the command line
type Prompter interface {
	Folder() (string, error)
	Direction() (int, error)
	Dictionary(names []string) (string, error)
}

// huhPrompter prompts on the terminal
type huhPrompter struct{}

func (p *huhPrompter) Folder() (string, error) {
	var folder string
	input := huh.NewInput().
		Title("Folder path").
		Description("Folder containing the files to process").
		Value(&folder).
		Validate(func(s string) error {
			info, err := os.Stat(s)
			if err != nil {
				return errors.Errorf("folder %s does not exist", s)
			}
			if !info.IsDir() {
				return errors.Errorf("%s is not a directory", s)
			}
			return nil
		})
	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", errors.Errorf("running form: %w", err)
	}
	return folder, nil
}

func (p *huhPrompter) Direction() (int, error) {
	var direction string
	sel := huh.NewSelect[string]().
		Title("Replacement direction").
		Options(
			huh.NewOption("1 - replace keys with values", "1"),
			huh.NewOption("2 - replace values with keys", "2"),
		).
		Value(&direction)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		return 0, errors.Errorf("running form: %w", err)
	}
	n, err := strconv.Atoi(direction)
	if err != nil {
		return 0, errors.Errorf("parsing direction: %w", err)
	}
	return n, nil
}

func (p *huhPrompter) Dictionary(names []string) (string, error) {
	var name string
	sel := huh.NewSelect[string]().
		Title("Dictionary").
		Options(huh.NewOptions(names...)...).
		Value(&name)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		return "", errors.Errorf("running form: %w", err)
	}
	return name, nil
}
