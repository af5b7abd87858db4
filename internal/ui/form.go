package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"kat/internal/card"
	"kat/internal/domain"
)

// CardForm is the interactive editor for resource-card snippets
type CardForm struct {
	builder *card.Builder
}

// NewCardForm creates a new CardForm
func NewCardForm(builder *card.Builder) *CardForm {
	return &CardForm{builder: builder}
}

// Show runs the form until the user quits. Saved snippets are written to
// <slug>.html in the working directory.
func (cf *CardForm) Show(initial domain.Card) error {
	app := tview.NewApplication()

	current := initial

	// Preview pane for the generated snippet (right side)
	preview := tview.NewTextView().
		SetWrap(true).
		SetWordWrap(true)
	preview.SetBorder(true).SetTitle(" Snippet ")

	// Status line below the preview
	status := tview.NewTextView().SetDynamicColors(true)

	generate := func() {
		snippet, err := cf.builder.Build(current)
		if err != nil {
			preview.SetText("")
			status.SetText(fmt.Sprintf("[red]%v", err))
			return
		}
		preview.SetText(snippet)
		status.SetText("[green]Generated. Ctrl+S saves, Esc quits.")
	}

	save := func() {
		snippet, err := cf.builder.Build(current)
		if err != nil {
			status.SetText(fmt.Sprintf("[red]%v", err))
			return
		}
		path := cf.builder.FileName(current)
		if err := os.WriteFile(path, []byte(snippet+"\n"), 0644); err != nil {
			status.SetText(fmt.Sprintf("[red]save failed: %v", err))
			return
		}
		preview.SetText(snippet)
		status.SetText(fmt.Sprintf("[green]Saved to %s", path))
	}

	form := tview.NewForm().
		AddInputField("Card Name", current.Name, 0, nil, func(text string) { current.Name = text }).
		AddInputField("Category", current.Category, 0, nil, func(text string) { current.Category = text }).
		AddInputField("Tags (comma-separated)", current.Tags, 0, nil, func(text string) { current.Tags = text }).
		AddInputField("Search terms", current.SearchTerms, 0, nil, func(text string) { current.SearchTerms = text }).
		AddInputField("Visible Title", current.Title, 0, nil, func(text string) { current.Title = text }).
		AddInputField("Visible Description", current.Description, 0, nil, func(text string) { current.Description = text }).
		AddInputField("Link URL", current.Href, 0, nil, func(text string) { current.Href = text }).
		AddCheckbox("Update pill i18n keys", current.UpdatePills, func(checked bool) { current.UpdatePills = checked }).
		AddButton("Generate", generate).
		AddButton("Save", save).
		AddButton("Quit", func() { app.Stop() })
	form.SetBorder(true).SetTitle(" Resource Card ")

	// Layout: form on the left (1/3), preview and status on the right (2/3)
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(preview, 0, 1, false).
		AddItem(status, 1, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(form, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			app.Stop()
			return nil
		case event.Key() == tcell.KeyCtrlS:
			save()
			return nil
		}
		return event
	})

	generate()

	return app.SetRoot(flex, true).SetFocus(form).Run()
}
