package commands

import (
	"fmt"
	"os"

	"kat/internal/card"
	"kat/internal/config"
	"kat/internal/domain"
	"kat/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CardCommand handles the card command
type CardCommand struct {
	config  *config.Config
	builder *card.Builder
	form    *ui.CardForm
}

// NewCardCommand creates a new CardCommand
func NewCardCommand(cfg *config.Config, builder *card.Builder, form *ui.CardForm) *CardCommand {
	return &CardCommand{
		config:  cfg,
		builder: builder,
		form:    form,
	}
}

// Execute runs the command
func (cc *CardCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := cc.config.Flags
	c := domain.Card{
		Name:        flags.CardName,
		Category:    flags.CardCategory,
		Tags:        flags.CardTags,
		SearchTerms: flags.CardSearch,
		Title:       flags.CardTitle,
		Description: flags.CardDescription,
		Href:        flags.CardHref,
		UpdatePills: !flags.NoPills,
	}

	out := flags.CardOut
	if out == "" {
		return cc.form.Show(c)
	}

	snippet, err := cc.builder.Build(c)
	if err != nil {
		return err
	}

	if out == "-" {
		fmt.Println(snippet)
		return nil
	}
	if err := os.WriteFile(out, []byte(snippet+"\n"), 0644); err != nil {
		return fmt.Errorf("write snippet: %w", err)
	}
	color.Green("Saved snippet to %s", out)
	return nil
}
