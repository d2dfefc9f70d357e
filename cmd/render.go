package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderIndent string

var renderCmd = &cobra.Command{
	Use:   "render <template.yaml>",
	Short: "Render a template and print the JSON payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderIndent, "indent", "", "Indent string (overrides config; \"none\" for compact output)")
}

func runRender(cmd *cobra.Command, args []string) error {
	c, err := loadContainer()
	if err != nil {
		return err
	}

	payload, err := c.Renderer().RenderFile(args[0])
	if err != nil {
		return err
	}

	indent := c.Config().Output.Indent
	switch renderIndent {
	case "":
	case "none":
		indent = ""
	default:
		indent = renderIndent
	}

	data, err := payload.JSON(indent)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
