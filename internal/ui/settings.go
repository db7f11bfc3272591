// internal/ui/settings.go
package ui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ncruces/zenity"

	"wheel-overlay/internal/config"
	"wheel-overlay/internal/event"
)

const (
	settingsTitle = "Settings"
	invalidTitle  = "Invalid Input"
)

// Prompter — набор системных диалогов, нужных для настроек.
type Prompter interface {
	Entry(title, text, initial string) (string, error)
	List(title, text string, items []string, selected string) (string, error)
	// Confirm возвращает save=true для Save и false для Apply.
	Confirm(title, text string) (save bool, err error)
	Warning(title, text string) error
	Error(title, text string) error
}

// SettingsDialog проводит пользователя через прозрачность, размер и выбор руля.
type SettingsDialog struct {
	prompt Prompter
}

func NewSettingsDialog(p Prompter) *SettingsDialog {
	return &SettingsDialog{prompt: p}
}

// Run показывает диалоги и возвращает подтверждённые настройки. Отмена на
// любом шаге возвращает zenity.ErrCanceled, ничего не применяется.
func (d *SettingsDialog) Run(current event.Settings, wheels []string) (event.Settings, error) {
	next := current

	opacity, err := d.askInt(
		fmt.Sprintf("Opacity (0-%d):", config.MaxOpacity), current.Opacity, ParseOpacity)
	if err != nil {
		return current, err
	}
	next.Opacity = opacity

	size, err := d.askInt(
		fmt.Sprintf("Window Size (%d-%d):", config.MinSize, config.MaxSize), current.Size, ParseSize)
	if err != nil {
		return current, err
	}
	next.Size = size

	if len(wheels) > 0 {
		selected := current.Wheel
		text := fmt.Sprintf("Choose your wheel (%d available)", len(wheels))
		wheel, err := d.prompt.List(settingsTitle, text, wheels, selected)
		if err != nil {
			return current, err
		}
		if wheel != "" {
			next.Wheel = wheel
		}
	}

	save, err := d.prompt.Confirm(settingsTitle, summary(next))
	if err != nil {
		return current, err
	}
	next.Save = save
	return next, nil
}

// askInt показывает поле снова, с отвергнутым текстом, пока значение не
// разберётся или пользователь не отменит.
func (d *SettingsDialog) askInt(text string, current int, parse func(string, int) (int, error)) (int, error) {
	initial := strconv.Itoa(current)
	for {
		answer, err := d.prompt.Entry(settingsTitle, text, initial)
		if err != nil {
			return current, err
		}
		v, perr := parse(answer, current)
		if perr == nil {
			return v, nil
		}
		if err := d.prompt.Warning(invalidTitle, perr.Error()); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			return current, err
		}
		initial = answer
	}
}

func summary(s event.Settings) string {
	return fmt.Sprintf("Opacity: %d\nWindow size: %d\nWheel: %s", s.Opacity, s.Size, s.Wheel)
}

// ZenityPrompter показывает системные диалоги через zenity.
type ZenityPrompter struct{}

func (ZenityPrompter) Entry(title, text, initial string) (string, error) {
	return zenity.Entry(text, zenity.Title(title), zenity.EntryText(initial))
}

func (ZenityPrompter) List(title, text string, items []string, selected string) (string, error) {
	opts := []zenity.Option{zenity.Title(title)}
	if selected != "" {
		opts = append(opts, zenity.DefaultItems(selected))
	}
	return zenity.List(text, items, opts...)
}

func (ZenityPrompter) Confirm(title, text string) (bool, error) {
	err := zenity.Question(text,
		zenity.Title(title),
		zenity.OKLabel("Save"),
		zenity.ExtraButton("Apply"),
		zenity.CancelLabel("Cancel"),
		zenity.NoWrap(),
	)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, zenity.ErrExtraButton):
		return false, nil
	default:
		return false, err
	}
}

func (ZenityPrompter) Warning(title, text string) error {
	return zenity.Warning(text, zenity.Title(title), zenity.WarningIcon)
}

func (ZenityPrompter) Error(title, text string) error {
	return zenity.Error(text, zenity.Title(title), zenity.ErrorIcon)
}
